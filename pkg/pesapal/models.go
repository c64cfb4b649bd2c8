package pesapal

// Token is the bearer credential returned by /api/Auth/RequestToken.
// ExpiryDate is kept as sent; see ExpiresAt for parsing.
type Token struct {
	Token      string    `json:"token"`
	ExpiryDate string    `json:"expiryDate"`
	Error      *APIError `json:"error,omitempty"`
	Status     string    `json:"status,omitempty"`
	Message    string    `json:"message,omitempty"`
}

// IPNEndpoint is a notification url registered with the gateway.
type IPNEndpoint struct {
	URL                  string    `json:"url"`
	CreatedDate          string    `json:"created_date"`
	IPNID                string    `json:"ipn_id"`
	NotificationType     int       `json:"notification_type,omitempty"`
	NotificationTypeDesc string    `json:"ipn_notification_type_description,omitempty"`
	IPNStatus            int       `json:"ipn_status,omitempty"`
	IPNStatusDescription string    `json:"ipn_status_decription,omitempty"`
	Error                *APIError `json:"error,omitempty"`
	Status               string    `json:"status,omitempty"`
}

type BillingAddress struct {
	EmailAddress string `json:"email_address,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	MiddleName   string `json:"middle_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Line1        string `json:"line_1,omitempty"`
	Line2        string `json:"line_2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	ZipCode      string `json:"zip_code,omitempty"`
}

// PaymentDetails is supplied by the caller and never modified by the client.
type PaymentDetails struct {
	ID             string         `json:"id"`
	Currency       string         `json:"currency"`
	Amount         float64        `json:"amount"`
	Description    string         `json:"description"`
	CallbackURL    string         `json:"callback_url"`
	NotificationID string         `json:"notification_id"`
	BillingAddress BillingAddress `json:"billing_address"`
}

// OrderRequest is the body of SubmitOrderRequest.
type OrderRequest struct {
	ID             string         `json:"id"`
	Currency       string         `json:"currency"`
	Amount         float64        `json:"amount"`
	Description    string         `json:"description"`
	CallbackURL    string         `json:"callback_url"`
	NotificationID string         `json:"notification_id"`
	BillingAddress BillingAddress `json:"billing_address"`
}

type OrderResponse struct {
	OrderTrackingID   string    `json:"order_tracking_id"`
	MerchantReference string    `json:"merchant_reference"`
	RedirectURL       string    `json:"redirect_url"`
	Error             *APIError `json:"error,omitempty"`
	Status            string    `json:"status"`
}

type TransactionStatus struct {
	PaymentMethod            string    `json:"payment_method"`
	Amount                   float64   `json:"amount"`
	CreatedDate              string    `json:"created_date"`
	ConfirmationCode         string    `json:"confirmation_code"`
	PaymentStatusDescription string    `json:"payment_status_description"`
	Description              string    `json:"description"`
	Message                  string    `json:"message"`
	PaymentAccount           string    `json:"payment_account"`
	CallBackURL              string    `json:"call_back_url"`
	StatusCode               int       `json:"status_code"`
	MerchantReference        string    `json:"merchant_reference"`
	PaymentStatusCode        string    `json:"payment_status_code"`
	Currency                 string    `json:"currency"`
	Error                    *APIError `json:"error,omitempty"`
	Status                   string    `json:"status"`
}

type RefundRequest struct {
	ConfirmationCode string `json:"confirmation_code"`
	Amount           string `json:"amount"`
	Username         string `json:"username"`
	Remarks          string `json:"remarks"`
}

type RefundResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Result is the common success/error envelope. Transport failures and errors
// embedded in gateway responses both end up in Err.
type Result struct {
	Success bool   `json:"success"`
	Err     string `json:"err,omitempty"`
}

type TokenStatus struct {
	Success      bool   `json:"success"`
	MadeNewToken bool   `json:"madeNewToken"`
	Err          string `json:"err,omitempty"`
}

type RegisterIPNResult struct {
	Success  bool         `json:"success"`
	Err      string       `json:"err,omitempty"`
	Endpoint *IPNEndpoint `json:"endpoint,omitempty"`
}

type ListIPNsResult struct {
	Success   bool          `json:"success"`
	Err       string        `json:"err,omitempty"`
	Endpoints []IPNEndpoint `json:"endpoints,omitempty"`
}

type SubmitOrderResult struct {
	Success       bool           `json:"success"`
	Status        int            `json:"status,omitempty"`
	OrderResponse *OrderResponse `json:"orderResponse,omitempty"`
	Err           string         `json:"err,omitempty"`
}

// TransactionStatusResult is successful only for a COMPLETED payment. Any
// other description comes back in Status with an empty Err.
type TransactionStatusResult struct {
	Success  bool               `json:"success"`
	Status   string             `json:"status,omitempty"`
	Response *TransactionStatus `json:"response,omitempty"`
	Err      string             `json:"err,omitempty"`
}

type RefundResult struct {
	Success        bool            `json:"success"`
	RefundResponse *RefundResponse `json:"refundResponse,omitempty"`
	Err            string          `json:"err,omitempty"`
}
