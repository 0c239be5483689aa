package products

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vouchers-system/domain/entities"
	"vouchers-system/errors"
	"vouchers-system/utils/configs"
	"vouchers-system/utils/helpers"
)

type ProductCollection struct {
	conf       *configs.Config
	collection *mongo.Collection
}

func NewProductCollectionImpl(client *mongo.Client, conf *configs.Config) *ProductCollection {
	return &ProductCollection{
		conf:       conf,
		collection: client.Database(conf.MongoDatabase).Collection("products"),
	}
}

func (p *ProductCollection) FindByID(ctx context.Context, id string) (res *entities.Product, err error) {
	err = p.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrProductNotFound
	}

	return
}

// Upsert mirrors the storefront catalogue row this service needs for
// fulfillment (name, price, voucher flag).
func (p *ProductCollection) Upsert(ctx context.Context, entity *entities.Product) (*entities.Product, error) {
	if entity.Id == "" {
		entity.Id = helpers.GetUUId()
	}
	entity.UpdatedAt = helpers.GetCurrentTime()
	if entity.CreatedAt.IsZero() {
		entity.CreatedAt = entity.UpdatedAt
	}

	upsert := true
	_, err := p.collection.ReplaceOne(ctx, bson.M{"_id": entity.Id}, entity,
		&options.ReplaceOptions{Upsert: &upsert})
	if err != nil {
		return nil, err
	}

	return entity, nil
}
