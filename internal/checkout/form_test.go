package checkout

import (
	"testing"

	"github.com/platansad/storefront/internal/constants"
	"github.com/platansad/storefront/internal/models"
)

func validNovaPoshtaForm() Form {
	form := NewForm()
	form.CustomerName = "Олена Петренко"
	form.CustomerPhone = "+380 (63) 650-74-49"
	form.CustomerEmail = "olena@example.com"
	form.ApplyResolver(
		&models.City{Ref: "a", Name: "Київ"},
		&models.Warehouse{Ref: "w1", Description: "Відділення №1", CityRef: "a"},
		"Київ, Відділення №1",
	)
	return form
}

func TestValidatePassesForCompleteNovaPoshtaForm(t *testing.T) {
	form := validNovaPoshtaForm()
	if errs := form.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateRequiresNamePhoneEmail(t *testing.T) {
	form := NewForm()
	errs := form.Validate()

	if errs["customerName"] != "Введіть ім'я" {
		t.Fatalf("unexpected name error: %q", errs["customerName"])
	}
	if errs["customerPhone"] != "Введіть телефон" {
		t.Fatalf("unexpected phone error: %q", errs["customerPhone"])
	}
	if errs["customerEmail"] != "Введіть email" {
		t.Fatalf("unexpected email error: %q", errs["customerEmail"])
	}
}

func TestValidateRejectsMalformedPhone(t *testing.T) {
	form := validNovaPoshtaForm()
	form.CustomerPhone = "12345"

	errs := form.Validate()
	if errs["customerPhone"] != "Невірний формат телефону" {
		t.Fatalf("unexpected phone error: %q", errs["customerPhone"])
	}
}

func TestValidateNovaPoshtaRequiresCityAndWarehouse(t *testing.T) {
	form := validNovaPoshtaForm()
	form.City = nil
	form.Warehouse = nil

	errs := form.Validate()
	if errs["city"] == "" || errs["warehouse"] == "" {
		t.Fatalf("nova poshta delivery must require city and warehouse, got %v", errs)
	}
}

func TestSelfPickupSkipsAddressRequirements(t *testing.T) {
	form := validNovaPoshtaForm()
	form.SetDeliveryMethod(constants.DeliveryMethodSelfPickup, "")

	if form.City != nil || form.Warehouse != nil {
		t.Fatal("self pickup must drop resolver selections")
	}
	if form.DeliveryAddress != constants.PickupAddress {
		t.Fatalf("unexpected pickup address: %q", form.DeliveryAddress)
	}
	if errs := form.Validate(); len(errs) != 0 {
		t.Fatalf("self pickup must pass without city/warehouse, got %v", errs)
	}
}

func TestSwitchingBackToNovaPoshtaClearsAddress(t *testing.T) {
	form := validNovaPoshtaForm()
	form.SetDeliveryMethod(constants.DeliveryMethodSelfPickup, "")
	form.SetDeliveryMethod(constants.DeliveryMethodNovaPoshta, "")

	if form.DeliveryAddress != "" {
		t.Fatalf("address must reset for nova poshta, got %q", form.DeliveryAddress)
	}
	if errs := form.Validate(); errs["city"] == "" {
		t.Fatal("resolver selections must be required again")
	}
}
