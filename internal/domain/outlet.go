// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Outlet representa uma loja/unidade acompanhada pelos KPIs
type Outlet struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ManagerID *int64 `json:"manager_id"`
}

type CreateOutletRequest struct {
	Name *string `json:"name"`
}
