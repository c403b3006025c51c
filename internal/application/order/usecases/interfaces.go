package usecases

import "context"

type UpdateOrderStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateOrderStatusCommand) (*UpdateOrderStatusResult, error)
}

type AcceptOrderExecutor interface {
	Execute(ctx context.Context, cmd AcceptOrderCommand) (*AcceptOrderResult, error)
}

type StartDeliveryExecutor interface {
	Execute(ctx context.Context, cmd StartDeliveryCommand) (*StartDeliveryResult, error)
}

type CompleteDeliveryExecutor interface {
	Execute(ctx context.Context, cmd CompleteDeliveryCommand) (*CompleteDeliveryResult, error)
}

type GetOrderExecutor interface {
	Execute(ctx context.Context, query GetOrderQuery) (*OrderDTO, error)
}
