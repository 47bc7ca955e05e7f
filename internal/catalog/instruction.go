package catalog

import (
	"context"

	"udm/internal/filter"
	"udm/internal/model"
	"udm/internal/query"
	"udm/internal/schema"
)

// AddInstruction inserts an instruction row and returns its assigned id.
func (s *Service) AddInstruction(ctx context.Context, in model.Instruction) (int64, error) {
	return s.backend.Insert(ctx, query.InsertInstruction(in))
}

// UpdateInstruction updates an existing instruction row by id.
func (s *Service) UpdateInstruction(ctx context.Context, in model.Instruction) error {
	stmt, err := query.UpdateInstruction(in)
	if err != nil {
		return err
	}
	return s.backend.Update(ctx, stmt)
}

// RemoveInstruction deletes an instruction row by id. Idempotent.
func (s *Service) RemoveInstruction(ctx context.Context, id int64) error {
	return s.backend.Delete(ctx, query.DeleteInstruction(id))
}

// CollectInstructions resolves filterText against the instructions column
// enum and returns every matching row.
func (s *Service) CollectInstructions(ctx context.Context, filterText string) ([]model.Instruction, error) {
	clauses, err := filter.Parse(schema.Instructions, filterText)
	if err != nil {
		return nil, err
	}
	rows, err := s.backend.Select(ctx, schema.Instructions, query.SelectWhere(schema.Instructions, clauses))
	if err != nil {
		return nil, err
	}
	out := make([]model.Instruction, len(rows))
	for i, r := range rows {
		out[i] = instructionFromRow(r)
	}
	return out, nil
}

func (s *Service) fetchInstructionsByID(ctx context.Context, ids []int64) (map[int64]model.Instruction, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	clause := filter.Clause{Column: schema.InstructionID, Op: filter.OpIn, Values: int64sToStrings(ids)}
	rows, err := s.backend.Select(ctx, schema.Instructions, query.SelectWhere(schema.Instructions, []filter.Clause{clause}))
	if err != nil {
		return nil, err
	}
	out := make(map[int64]model.Instruction, len(rows))
	for _, r := range rows {
		in := instructionFromRow(r)
		out[in.ID] = in
	}
	return out, nil
}
