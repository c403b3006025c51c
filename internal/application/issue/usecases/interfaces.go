package usecases

import (
	"context"

	"dishpatch/internal/application/issue/dto"
)

type CreateIssueExecutor interface {
	Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error)
}

type AddMessageExecutor interface {
	Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error)
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type OwnerRefundExecutor interface {
	Execute(ctx context.Context, cmd OwnerRefundCommand) (*OwnerRefundResult, error)
}

type AdminCreditExecutor interface {
	Execute(ctx context.Context, cmd AdminCreditCommand) (*AdminCreditResult, error)
}

type ReplyIssueExecutor interface {
	Execute(ctx context.Context, cmd ReplyIssueCommand) (*ReplyIssueResult, error)
}

type ResolveOwnerIssueExecutor interface {
	Execute(ctx context.Context, cmd ResolveOwnerIssueCommand) (*ResolveOwnerIssueResult, error)
}

type GetIssueExecutor interface {
	Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDetailDTO, error)
}

type ListIssuesExecutor interface {
	Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error)
}
