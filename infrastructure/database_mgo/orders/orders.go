package orders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"vouchers-system/domain/entities"
	"vouchers-system/errors"
	"vouchers-system/infrastructure/database_mgo"
	"vouchers-system/utils/configs"
	"vouchers-system/utils/gen_ids"
	"vouchers-system/utils/helpers"
)

type OrderCollection struct {
	conf       *configs.Config
	collection *mongo.Collection
}

func NewOrderCollectionImpl(client *mongo.Client, conf *configs.Config) *OrderCollection {
	return &OrderCollection{
		conf:       conf,
		collection: client.Database(conf.MongoDatabase).Collection("orders"),
	}
}

func (o *OrderCollection) Create(ctx context.Context, entity *entities.OrderEntity) (res *entities.OrderEntity, err error) {
	if entity.OrderID == "" {
		entity.OrderID = gen_ids.GetIdOrderId()
	}

	_, err = o.collection.InsertOne(ctx, entity)

	if err == nil {
		res = entity
	}

	return
}

func (o *OrderCollection) FindByOrderID(ctx context.Context, orderID string) (res *entities.OrderEntity, err error) {
	err = o.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrOrderNotFound
	}

	return
}

func (o *OrderCollection) ReplaceByID(ctx context.Context, order_entity *entities.OrderEntity) (res *entities.OrderEntity, err error) {
	order_entity.UpdatedAt = helpers.GetCurrentTime()

	update, err := o.collection.ReplaceOne(ctx, bson.M{"order_id": order_entity.OrderID}, order_entity)

	if err != nil {
		return
	}

	if err = database_mgo.ReplacedErr(update.MatchedCount, errors.ErrOrderNotFound); err != nil {
		return
	}
	res = order_entity

	return
}
