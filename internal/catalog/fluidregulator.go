package catalog

import (
	"context"

	"udm/internal/filter"
	"udm/internal/model"
	"udm/internal/query"
	"udm/internal/schema"
)

// AddFluidRegulator inserts a regulator row and returns its assigned id.
func (s *Service) AddFluidRegulator(ctx context.Context, fr model.FluidRegulator) (int64, error) {
	return s.backend.Insert(ctx, query.InsertFluidRegulator(fr))
}

// UpdateFluidRegulator updates an existing regulator row by id.
func (s *Service) UpdateFluidRegulator(ctx context.Context, fr model.FluidRegulator) error {
	stmt, err := query.UpdateFluidRegulator(fr)
	if err != nil {
		return err
	}
	return s.backend.Update(ctx, stmt)
}

// RemoveFluidRegulator deletes a regulator row by id. Idempotent.
func (s *Service) RemoveFluidRegulator(ctx context.Context, id int64) error {
	return s.backend.Delete(ctx, query.DeleteFluidRegulator(id))
}

// CollectFluidRegulators resolves filterText against the fluid_regulators
// column enum and returns every matching row.
func (s *Service) CollectFluidRegulators(ctx context.Context, filterText string) ([]model.FluidRegulator, error) {
	clauses, err := filter.Parse(schema.FluidRegulators, filterText)
	if err != nil {
		return nil, err
	}
	rows, err := s.backend.Select(ctx, schema.FluidRegulators, query.SelectWhere(schema.FluidRegulators, clauses))
	if err != nil {
		return nil, err
	}
	out := make([]model.FluidRegulator, len(rows))
	for i, r := range rows {
		out[i] = fluidRegulatorFromRow(r)
	}
	return out, nil
}

func (s *Service) fetchFluidRegulatorsByID(ctx context.Context, ids []int64) (map[int64]model.FluidRegulator, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	clause := filter.Clause{Column: schema.FluidRegulatorID, Op: filter.OpIn, Values: int64sToStrings(ids)}
	rows, err := s.backend.Select(ctx, schema.FluidRegulators, query.SelectWhere(schema.FluidRegulators, []filter.Clause{clause}))
	if err != nil {
		return nil, err
	}
	out := make(map[int64]model.FluidRegulator, len(rows))
	for _, r := range rows {
		fr := fluidRegulatorFromRow(r)
		out[fr.ID] = fr
	}
	return out, nil
}
