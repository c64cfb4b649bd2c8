package repository

import (
	"context"
	"errors"
	"log"

	"pesapal_gateway/internal/domain/entities"
	"pesapal_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

const (
	defaultPaymentOrdersTableName = "payment_orders"
	paymentOrdersTrackingIDIndex  = "order_tracking_id-index"
)

type billingAddressItem struct {
	EmailAddress string `dynamodbav:"email_address,omitempty"`
	PhoneNumber  string `dynamodbav:"phone_number,omitempty"`
	FirstName    string `dynamodbav:"first_name,omitempty"`
	MiddleName   string `dynamodbav:"middle_name,omitempty"`
	LastName     string `dynamodbav:"last_name,omitempty"`
	Line1        string `dynamodbav:"line_1,omitempty"`
	Line2        string `dynamodbav:"line_2,omitempty"`
	City         string `dynamodbav:"city,omitempty"`
	State        string `dynamodbav:"state,omitempty"`
	PostalCode   string `dynamodbav:"postal_code,omitempty"`
	ZipCode      string `dynamodbav:"zip_code,omitempty"`
}

type paymentOrderItem struct {
	ID                string             `dynamodbav:"id"`
	TrackingID        string             `dynamodbav:"order_tracking_id,omitempty"`
	Amount            float64            `dynamodbav:"amount"`
	Currency          string             `dynamodbav:"currency"`
	Description       string             `dynamodbav:"description"`
	CallbackURL       string             `dynamodbav:"callback_url,omitempty"`
	RedirectURL       string             `dynamodbav:"redirect_url,omitempty"`
	BillingAddress    billingAddressItem `dynamodbav:"billing_address"`
	Status            string             `dynamodbav:"status"`
	StatusDescription string             `dynamodbav:"status_description,omitempty"`
	PaymentMethod     string             `dynamodbav:"payment_method,omitempty"`
	PaymentAccount    string             `dynamodbav:"payment_account,omitempty"`
	ConfirmationCode  string             `dynamodbav:"confirmation_code,omitempty"`
	RefundStatus      string             `dynamodbav:"refund_status,omitempty"`
	CreatedAt         string             `dynamodbav:"created_at"`
	UpdatedAt         string             `dynamodbav:"updated_at"`
	GatewayPayloadRaw string             `dynamodbav:"gateway_payload_raw,omitempty"`
}

// PaymentOrderDynamoRepository persists PaymentOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_tracking_id-index (PK: order_tracking_id)

type PaymentOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentOrderRepository = (*PaymentOrderDynamoRepository)(nil)

// NewPaymentOrderDynamoRepository falls back to PAYMENT_ORDERS_TABLE, then to
// "payment_orders", when tableName is empty.
func NewPaymentOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentOrderDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("PAYMENT_ORDERS_TABLE", defaultPaymentOrdersTableName)
	}
	return &PaymentOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentOrderDynamoRepository) Create(ctx context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
	if err := r.put(ctx, o, "attribute_not_exists(#id)"); err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PaymentOrder{}, interfaces.ErrPaymentOrderAlreadyExists
		}
		return entities.PaymentOrder{}, err
	}
	return o, nil
}

func (r *PaymentOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentOrder{}, nil
	}

	var it paymentOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentOrder{}, err
	}
	return fromPaymentOrderItem(it)
}

// GetByTrackingID reads the GSI, which is eventually consistent.
func (r *PaymentOrderDynamoRepository) GetByTrackingID(ctx context.Context, trackingID string) (entities.PaymentOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentOrdersTrackingIDIndex),
		KeyConditionExpression: aws.String("order_tracking_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: trackingID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentOrder{}, nil
	}

	var it paymentOrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentOrder{}, err
	}
	return fromPaymentOrderItem(it)
}

func (r *PaymentOrderDynamoRepository) Update(ctx context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
	if err := r.put(ctx, o, "attribute_exists(#id)"); err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PaymentOrder{}, interfaces.ErrPaymentOrderNotStored
		}
		return entities.PaymentOrder{}, err
	}
	return o, nil
}

func (r *PaymentOrderDynamoRepository) put(ctx context.Context, o entities.PaymentOrder, condition string) error {
	av, err := attributevalue.MarshalMap(toPaymentOrderItem(o))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			log.Printf("[payment_order][dynamodb] put failed id=%s code=%s", o.ID, apiErr.ErrorCode())
		}
	}
	return err
}

func isConditionalCheckFailed(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "ConditionalCheckFailedException"
}

func toPaymentOrderItem(o entities.PaymentOrder) paymentOrderItem {
	b := o.BillingAddress
	return paymentOrderItem{
		ID:          o.ID,
		TrackingID:  o.TrackingID,
		Amount:      o.Amount,
		Currency:    o.Currency,
		Description: o.Description,
		CallbackURL: o.CallbackURL,
		RedirectURL: o.RedirectURL,
		BillingAddress: billingAddressItem{
			EmailAddress: b.EmailAddress,
			PhoneNumber:  b.PhoneNumber,
			FirstName:    b.FirstName,
			MiddleName:   b.MiddleName,
			LastName:     b.LastName,
			Line1:        b.Line1,
			Line2:        b.Line2,
			City:         b.City,
			State:        b.State,
			PostalCode:   b.PostalCode,
			ZipCode:      b.ZipCode,
		},
		Status:            string(o.Status),
		StatusDescription: o.StatusDescription,
		PaymentMethod:     o.PaymentMethod,
		PaymentAccount:    o.PaymentAccount,
		ConfirmationCode:  o.ConfirmationCode,
		RefundStatus:      string(o.RefundStatus),
		CreatedAt:         formatTimestamp(o.CreatedAt),
		UpdatedAt:         formatTimestamp(o.UpdatedAt),
		GatewayPayloadRaw: string(o.GatewayPayloadRaw),
	}
}

func fromPaymentOrderItem(it paymentOrderItem) (entities.PaymentOrder, error) {
	createdAt, err := parseTimestamp(it.CreatedAt)
	if err != nil {
		log.Printf("[payment_order][dynamodb] corrupt created_at id=%s err=%v", it.ID, err)
		return entities.PaymentOrder{}, err
	}
	updatedAt, err := parseTimestamp(it.UpdatedAt)
	if err != nil {
		log.Printf("[payment_order][dynamodb] corrupt updated_at id=%s err=%v", it.ID, err)
		return entities.PaymentOrder{}, err
	}

	b := it.BillingAddress
	o := entities.PaymentOrder{
		ID:          it.ID,
		TrackingID:  it.TrackingID,
		Amount:      it.Amount,
		Currency:    it.Currency,
		Description: it.Description,
		CallbackURL: it.CallbackURL,
		RedirectURL: it.RedirectURL,
		BillingAddress: entities.BillingAddress{
			EmailAddress: b.EmailAddress,
			PhoneNumber:  b.PhoneNumber,
			FirstName:    b.FirstName,
			MiddleName:   b.MiddleName,
			LastName:     b.LastName,
			Line1:        b.Line1,
			Line2:        b.Line2,
			City:         b.City,
			State:        b.State,
			PostalCode:   b.PostalCode,
			ZipCode:      b.ZipCode,
		},
		Status:            entities.PaymentStatus(it.Status),
		StatusDescription: it.StatusDescription,
		PaymentMethod:     it.PaymentMethod,
		PaymentAccount:    it.PaymentAccount,
		ConfirmationCode:  it.ConfirmationCode,
		RefundStatus:      entities.RefundStatus(it.RefundStatus),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
	if it.GatewayPayloadRaw != "" {
		o.GatewayPayloadRaw = []byte(it.GatewayPayloadRaw)
	}
	return o, nil
}
