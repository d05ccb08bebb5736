package checkout

import (
	"regexp"
	"strings"

	"github.com/platansad/storefront/internal/constants"
	"github.com/platansad/storefront/internal/models"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{10,}$`)
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is the checkout form state. City and Warehouse come from the
// resolver; they only matter for nova_poshta delivery.
type Form struct {
	CustomerName    string            `json:"customerName"`
	CustomerPhone   string            `json:"customerPhone"`
	CustomerEmail   string            `json:"customerEmail"`
	DeliveryMethod  string            `json:"deliveryMethod"`
	City            *models.City      `json:"city"`
	Warehouse       *models.Warehouse `json:"warehouse"`
	DeliveryAddress string            `json:"deliveryAddress"`
	PaymentMethod   string            `json:"paymentMethod"`
	Notes           string            `json:"notes"`
}

// NewForm starts with nova poshta delivery and cash on delivery payment.
func NewForm() Form {
	return Form{
		DeliveryMethod: constants.DeliveryMethodNovaPoshta,
		PaymentMethod:  constants.PaymentMethodCashOnDelivery,
	}
}

// SetDeliveryMethod switches the delivery method. Self pickup drops the
// resolver selections and pins the nursery address; switching back to nova
// poshta clears the address so the resolver has to fill it again.
func (f *Form) SetDeliveryMethod(method, pickupAddress string) {
	f.DeliveryMethod = method
	if method == constants.DeliveryMethodSelfPickup {
		f.City = nil
		f.Warehouse = nil
		if pickupAddress == "" {
			pickupAddress = constants.PickupAddress
		}
		f.DeliveryAddress = pickupAddress
		return
	}
	f.DeliveryAddress = ""
}

// ApplyResolver copies the resolver selections into the form.
func (f *Form) ApplyResolver(city *models.City, warehouse *models.Warehouse, deliveryAddress string) {
	f.City = city
	f.Warehouse = warehouse
	f.DeliveryAddress = deliveryAddress
}

// Validate checks the form before submission. The returned map is keyed by
// field name; an empty map means the form passes. Address requirements apply
// to nova poshta delivery only.
func (f *Form) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.CustomerName) == "" {
		errs["customerName"] = "Введіть ім'я"
	}

	phone := strings.TrimSpace(f.CustomerPhone)
	if phone == "" {
		errs["customerPhone"] = "Введіть телефон"
	} else if !phonePattern.MatchString(phone) {
		errs["customerPhone"] = "Невірний формат телефону"
	}

	email := strings.TrimSpace(f.CustomerEmail)
	if email == "" {
		errs["customerEmail"] = "Введіть email"
	} else if !emailPattern.MatchString(email) {
		errs["customerEmail"] = "Невірний формат email"
	}

	if f.DeliveryMethod == constants.DeliveryMethodNovaPoshta {
		if f.City == nil {
			errs["city"] = "Оберіть місто доставки"
		}
		if f.Warehouse == nil {
			errs["warehouse"] = "Оберіть відділення"
		}
	}

	return errs
}
