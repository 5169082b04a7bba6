package transformers

import (
	"fmt"

	"github.com/photonow/orders.api.photonow.io/models"
	"github.com/shopspring/decimal"
)

// OrderTransformer transforms order resource data between rest and database
// models
type OrderTransformer struct{}

// TransformToRest transforms an order database model into its public facing
// rest model. Amounts are stored in pence and rendered as a two decimal
// place string.
func (ot OrderTransformer) TransformToRest(dbResource models.OrderResourceDB, webURL string) models.OrderResourceRest {
	orderResource := models.OrderResourceRest{
		ID:              dbResource.ID,
		PaymentIntentID: dbResource.PaymentIntentID,
		Moments:         dbResource.Moments,
		Amount:          decimal.NewFromInt(dbResource.Amount).Div(decimal.NewFromInt(100)).StringFixed(2),
		Currency:        dbResource.Currency,
		Fulfilled:       dbResource.Fulfilled,
		CreatedAt:       dbResource.CreatedAt,
		FulfilledAt:     dbResource.FulfilledAt,
		Links: models.OrderLinksRest{
			Self:         fmt.Sprintf("orders/%s", dbResource.ID),
			Confirmation: ConfirmationURL(webURL, dbResource.ID),
		},
	}
	return orderResource
}

// ConfirmationURL builds the order confirmation deep link used in responses
// and confirmation emails. The base URL is expected to carry its own
// trailing slash.
func ConfirmationURL(webURL, orderID string) string {
	return webURL + "order-confirmation/" + orderID
}
