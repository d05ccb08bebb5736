package constants

// Guest identity: the backend keys carts, wishlists and orders by this
// literal user id. There is no multi-user session model in the storefront.
const GuestUserID = "guest"

// Delivery method constants
const (
	DeliveryMethodNovaPoshta = "nova_poshta"
	DeliveryMethodSelfPickup = "self_pickup"
)

// Self-pickup hands the order over at the nursery itself.
const PickupAddress = "смт. Смига, вул. Садова, 15"

// Payment method constants
const (
	PaymentMethodCashOnDelivery = "cash_on_delivery"
	PaymentMethodCard           = "card"
)

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// LiqPay payment status constants
const (
	LiqPayStatusSuccess    = "success"
	LiqPayStatusFailure    = "failure"
	LiqPayStatusError      = "error"
	LiqPayStatusProcessing = "processing"
	LiqPayStatusWaitSecure = "wait_secure"
)

// Storage keys (fixed, shared with the original browser client)
const (
	StorageKeyCompareItems  = "compareItems"
	StorageKeyAdminToken    = "adminToken"
	StorageKeyAdminUsername = "adminUsername"
)

// Compare list capacity
const CompareMaxItems = 4

// Queue and task constants
const (
	QueueDefault          = "default"
	TaskPaymentStatusPoll = "payment:status_poll"
)

// Cache key prefixes
const (
	CacheKeyLiqPayStatus = "liqpay:status:"
)
