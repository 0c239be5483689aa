package application

import (
	"context"

	"vouchers-system/domain/entities"
	"vouchers-system/errors"
	"vouchers-system/utils/helpers"
)

func (us *VoucherApplication) CreateTemplate(ctx context.Context, template *entities.VoucherTemplate) (*entities.VoucherTemplate, error) {
	if template.Id == "" {
		template.Id = helpers.GetUUId()
	}
	template.CreatedAt = helpers.GetCurrentTime()
	template.UpdatedAt = template.CreatedAt

	return us.TemplateRepository.Create(ctx, template)
}

func (us *VoucherApplication) UpdateTemplate(ctx context.Context, template *entities.VoucherTemplate) (*entities.VoucherTemplate, error) {
	template.UpdatedAt = helpers.GetCurrentTime()

	return us.TemplateRepository.Update(ctx, template)
}

// DeleteTemplate refuses to remove the current default; the storefront must
// promote another template first.
func (us *VoucherApplication) DeleteTemplate(ctx context.Context, id string) error {
	template, err := us.TemplateRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if template.IsDefault {
		return errors.ErrTemplateInUse
	}

	return us.TemplateRepository.Delete(ctx, id)
}

func (us *VoucherApplication) FindTemplateByID(ctx context.Context, id string) (*entities.VoucherTemplate, error) {
	return us.TemplateRepository.FindByID(ctx, id)
}

func (us *VoucherApplication) ListTemplates(ctx context.Context, limit, offset int64) ([]*entities.VoucherTemplate, error) {
	return us.TemplateRepository.List(ctx, limit, offset)
}

func (us *VoucherApplication) SetDefaultTemplate(ctx context.Context, id string) error {
	return us.TemplateRepository.SetDefault(ctx, id)
}
