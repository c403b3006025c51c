package mappers

import (
	"dishpatch/internal/domain/account"
	"dishpatch/internal/infrastructure/persistence/models"
)

// AccountMapper handles the conversion between account domain entities and persistence models.
type AccountMapper interface {
	ToModel(a *account.Account) *models.AccountModel
	ToDomain(model *models.AccountModel) (*account.Account, error)
}

// AccountMapperImpl is the concrete implementation of AccountMapper.
type AccountMapperImpl struct{}

// NewAccountMapper creates a new AccountMapper.
func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

// ToModel converts an account domain entity to a persistence model.
func (m *AccountMapperImpl) ToModel(a *account.Account) *models.AccountModel {
	return &models.AccountModel{
		ID:            a.ID(),
		Name:          a.Name(),
		Role:          a.Role().String(),
		CourierStatus: a.CourierStatus().String(),
		CreatedAt:     a.CreatedAt().UnixMilli(),
		UpdatedAt:     a.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts an account persistence model to a domain entity.
func (m *AccountMapperImpl) ToDomain(model *models.AccountModel) (*account.Account, error) {
	return account.ReconstructAccount(
		model.ID,
		model.Name,
		account.Role(model.Role),
		account.CourierStatus(model.CourierStatus),
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
