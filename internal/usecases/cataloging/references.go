package cataloging

import (
	"context"
	"fmt"

	"github.com/vfg2006/performance-hub-api/internal/domain"
)

type referenceCheck struct {
	field  string
	id     int64
	exists func(context.Context, int64) (bool, error)
}

// ValidateReferences verifica loja, período e (quando informado) KPI, nessa ordem.
// A primeira referência inexistente gera NotFound identificando o campo.
func ValidateReferences(ctx context.Context, checker ReferenceChecker, outletID, periodID int64, kpiID *int64) error {
	checks := []referenceCheck{
		{"outlet_id", outletID, checker.OutletExists},
		{"period_id", periodID, checker.PeriodExists},
	}
	if kpiID != nil {
		checks = append(checks, referenceCheck{"kpi_id", *kpiID, checker.KPIExists})
	}

	for _, c := range checks {
		ok, err := c.exists(ctx, c.id)
		if err != nil {
			return fmt.Errorf("erro ao verificar %s: %w", c.field, err)
		}
		if !ok {
			return domain.NewNotFoundError(c.field, c.id)
		}
	}

	return nil
}
