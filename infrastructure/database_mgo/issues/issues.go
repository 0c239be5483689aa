package issues

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vouchers-system/domain/entities"
	"vouchers-system/errors"
	"vouchers-system/infrastructure/database_mgo"
	"vouchers-system/utils/configs"
	"vouchers-system/utils/helpers"
)

type IssueCollection struct {
	conf       *configs.Config
	collection *mongo.Collection
}

func NewIssueCollectionImpl(client *mongo.Client, conf *configs.Config) *IssueCollection {
	return &IssueCollection{
		conf:       conf,
		collection: client.Database(conf.MongoDatabase).Collection("voucher_issues"),
	}
}

func (i *IssueCollection) Create(ctx context.Context, entity *entities.VoucherIssue) (*entities.VoucherIssue, error) {
	if entity.Id == "" {
		entity.Id = helpers.GetUUId()
	}
	entity.CreatedAt = helpers.GetCurrentTime()
	entity.UpdatedAt = entity.CreatedAt

	_, err := i.collection.InsertOne(ctx, entity)
	if err != nil {
		return nil, err
	}

	return entity, nil
}

func (i *IssueCollection) ReplaceByID(ctx context.Context, entity *entities.VoucherIssue) (res *entities.VoucherIssue, err error) {
	entity.UpdatedAt = helpers.GetCurrentTime()

	update, err := i.collection.ReplaceOne(ctx, bson.M{"_id": entity.Id}, entity)

	if err != nil {
		return
	}

	if err = database_mgo.ReplacedErr(update.MatchedCount, errors.ErrVoucherNotFound); err != nil {
		return
	}
	res = entity

	return
}

func (i *IssueCollection) FindByCode(ctx context.Context, code string) (res *entities.VoucherIssue, err error) {
	err = i.collection.FindOne(ctx, bson.M{"code": code}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrVoucherNotFound
	}

	return
}

func (i *IssueCollection) FindByOrderID(ctx context.Context, orderID string) (res []*entities.VoucherIssue, err error) {
	cursor, err := i.collection.Find(ctx, bson.M{"order_id": orderID},
		&options.FindOptions{Sort: bson.D{{Key: "line_item", Value: 1}, {Key: "unit", Value: 1}}})
	if err != nil {
		return nil, err
	}

	for cursor.Next(ctx) {
		var issue entities.VoucherIssue

		err = cursor.Decode(&issue)
		if err != nil {
			continue
		}

		res = append(res, &issue)
	}

	return res, nil
}

func (i *IssueCollection) GetDeliveryFailed(ctx context.Context) (res []*entities.VoucherIssue, err error) {
	var limit int64 = 50

	cursor, err := i.collection.Find(ctx, bson.M{"status": entities.IssueDeliveryFailed},
		&options.FindOptions{Limit: &limit, Sort: bson.D{{Key: "created_at", Value: 1}}})
	if err != nil {
		return nil, err
	}

	for cursor.Next(ctx) {
		var issue entities.VoucherIssue

		err = cursor.Decode(&issue)
		if err != nil {
			continue
		}

		res = append(res, &issue)
	}

	return res, nil
}

// RedeemByCode flips an emailed, unexpired issue to redeemed in one atomic
// update; losers of a concurrent redeem race fall through to the error mapping.
func (i *IssueCollection) RedeemByCode(ctx context.Context, code string) (*entities.VoucherIssue, error) {
	now := helpers.GetCurrentTime()
	after := options.After

	var redeemed entities.VoucherIssue
	err := i.collection.FindOneAndUpdate(ctx,
		bson.M{"code": code, "status": entities.IssueEmailed, "expires_at": bson.M{"$gte": now}},
		bson.M{"$set": bson.M{"status": entities.IssueRedeemed, "redeemed_at": now, "updated_at": now}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&redeemed)

	if err == nil {
		return &redeemed, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	existing, err := i.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	switch {
	case existing.Status.IsRedeemed():
		return nil, errors.ErrVoucherRedeemed
	case existing.ExpiresAt.Before(now):
		return nil, errors.ErrVoucherExpired
	default:
		return nil, errors.ErrVoucherNotIssued
	}
}
