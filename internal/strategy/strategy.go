package strategy

import "grid-scenarios/internal/model"

type Context struct {
	Hour    int
	Battery *model.Battery
}

type Strategy interface {
	Name() string
	Decide(ctx Context) model.Dispatch
}
