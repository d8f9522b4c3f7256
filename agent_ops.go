package goreefcore

import (
	"context"
)

func (agent *Agent) Get(ctx context.Context, opts *GetOptions) (*GetResult, error) {
	return agent.crud.Get(ctx, opts)
}

func (agent *Agent) Insert(ctx context.Context, opts *InsertOptions) (*InsertResult, error) {
	return agent.crud.Insert(ctx, opts)
}

func (agent *Agent) Upsert(ctx context.Context, opts *UpsertOptions) (*UpsertResult, error) {
	return agent.crud.Upsert(ctx, opts)
}

func (agent *Agent) Remove(ctx context.Context, opts *RemoveOptions) (*RemoveResult, error) {
	return agent.crud.Remove(ctx, opts)
}

func (agent *Agent) LookupIn(ctx context.Context, opts *LookupInOptions) (*LookupInResult, error) {
	return agent.crud.LookupIn(ctx, opts)
}

func (agent *Agent) MutateIn(ctx context.Context, opts *MutateInOptions) (*MutateInResult, error) {
	return agent.crud.MutateIn(ctx, opts)
}

func (agent *Agent) WaitForDurability(ctx context.Context, opts *WaitForDurabilityOptions) error {
	return agent.durability.WaitForDurability(ctx, opts)
}
