package templates

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

type TemplateCollection struct {
	conf       *configs.Config
	client     *mongo.Client
	collection *mongo.Collection
}

func NewTemplateCollectionImpl(client *mongo.Client, conf *configs.Config) *TemplateCollection {
	return &TemplateCollection{
		conf:       conf,
		client:     client,
		collection: client.Database(conf.MongoDatabase).Collection("voucher_templates"),
	}
}

func (t *TemplateCollection) Create(ctx context.Context, entity *entities.VoucherTemplate) (*entities.VoucherTemplate, error) {
	if entity.Id == "" {
		entity.Id = helpers.GetUUId()
	}
	entity.CreatedAt = helpers.GetCurrentTime()
	entity.UpdatedAt = entity.CreatedAt

	_, err := t.collection.InsertOne(ctx, entity)
	if err != nil {
		return nil, err
	}

	return entity, nil
}

func (t *TemplateCollection) Update(ctx context.Context, entity *entities.VoucherTemplate) (*entities.VoucherTemplate, error) {
	entity.UpdatedAt = helpers.GetCurrentTime()

	update, err := t.collection.ReplaceOne(ctx, bson.M{"_id": entity.Id}, entity)
	if err != nil {
		return nil, err
	}
	if update.MatchedCount == 0 {
		return nil, errors.ErrTemplateNotFound
	}

	return entity, nil
}

func (t *TemplateCollection) Delete(ctx context.Context, id string) error {
	res, err := t.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.ErrTemplateNotFound
	}
	return nil
}

func (t *TemplateCollection) FindByID(ctx context.Context, id string) (res *entities.VoucherTemplate, err error) {
	err = t.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrTemplateNotFound
	}
	return
}

func (t *TemplateCollection) List(ctx context.Context, limit, offset int64) (res []*entities.VoucherTemplate, err error) {
	cursor, err := t.collection.Find(ctx, bson.M{}, &options.FindOptions{
		Limit: &limit,
		Skip:  &offset,
		Sort:  bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return nil, err
	}

	for cursor.Next(ctx) {
		var template entities.VoucherTemplate

		err = cursor.Decode(&template)
		if err != nil {
			continue
		}

		res = append(res, &template)
	}

	return res, nil
}

func (t *TemplateCollection) GetDefault(ctx context.Context) (res *entities.VoucherTemplate, err error) {
	err = t.collection.FindOne(ctx, bson.M{"is_default": true}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		// no default template is a valid state, the fallback layout kicks in
		return nil, nil
	}
	return
}

// SetDefault moves the single default flag to the given template. Read, clear
// and set run inside one session transaction so an in-flight order never sees
// two defaults or none while the swap is half done.
func (t *TemplateCollection) SetDefault(ctx context.Context, id string) error {
	sess, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var current entities.VoucherTemplate

		err := t.collection.FindOne(sc, bson.M{"is_default": true}).Decode(&current)
		if err != nil && err != mongo.ErrNoDocuments {
			return nil, err
		}

		if err == nil && current.Id != id {
			_, err = t.collection.UpdateOne(sc,
				bson.M{"_id": current.Id, "is_default": true},
				bson.M{"$set": bson.M{"is_default": false, "updated_at": helpers.GetCurrentTime()}})
			if err != nil {
				return nil, err
			}
		}

		res, err := t.collection.UpdateOne(sc,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"is_default": true, "updated_at": helpers.GetCurrentTime()}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, errors.ErrTemplateNotFound
		}

		return nil, nil
	})

	return err
}
