package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorMap 欄位名稱（json）對應錯誤訊息；沒有 key 代表該欄位有效
type ErrorMap map[string]string

// Valid 沒有任何錯誤
func (e ErrorMap) Valid() bool {
	return len(e) == 0
}

var messages = map[string]string{
	"fullName.required":        "Full name is required",
	"phone.required":           "Phone number is required",
	"phone.phone_strict":       "Phone number must be exactly 10 digits",
	"phone.phone_loose":        "Phone number may only contain digits, spaces, +, -, ( and )",
	"email.required":           "Email is required",
	"email.email_light":        "Email address is invalid",
	"identityCard.required":    "Identity card number is required",
	"identityCard.national_id": "Identity card number must be 9 to 12 digits",
	"vehicleId.required":       "Please select a vehicle",
	"preferredDate.required":   "Please choose a date",
	"deliveryDate.required":    "Please choose a date",
	"pickupLocation.required":  "Please choose dealer pickup or home delivery",
	"pickupLocation.oneof":     "Please choose dealer pickup or home delivery",
	"dealerId.required_if":     "Please select a dealer",
	"homeAddress.required_if":  "Home address is required for home delivery",
	"agreement.required":       "You must accept the terms and conditions",
	"depositAmount.gte":        "Deposit amount cannot be negative",
	"*.required":               "This field is required",
	"*.date_format":            "Date must be in YYYY-MM-DD format",
	"*.not_past_date":          "Date cannot be in the past",
}

// Validator 同步、純本地的表單驗證；now 決定「今天」
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New now 為 nil 時使用 time.Now
func New(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	v := &Validator{validate: validator.New(), now: now}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v.validate, "phone_strict", stringRule(IsPhoneStrict))
	mustRegister(v.validate, "phone_loose", stringRule(IsPhoneLoose))
	mustRegister(v.validate, "email_light", stringRule(IsEmail))
	mustRegister(v.validate, "national_id", stringRule(IsIdentityCard))
	mustRegister(v.validate, "date_format", func(fl validator.FieldLevel) bool {
		_, ok := ParseDate(fl.Field().String(), v.now().Location())
		return ok
	})
	mustRegister(v.validate, "not_past_date", func(fl validator.FieldLevel) bool {
		now := v.now()
		date, ok := ParseDate(fl.Field().String(), now.Location())
		return ok && NotBeforeToday(date, now)
	})

	return v
}

// mustRegister 註冊失敗屬於程式錯誤，直接 panic
func mustRegister(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validators: register %q: %v", tag, err))
	}
}

func stringRule(match func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return match(fl.Field().String())
	}
}

// ValidateTestDrive 會先去除姓名與地址前後空白
func (v *Validator) ValidateTestDrive(form *TestDriveForm) ErrorMap {
	form.normalize()
	return v.check(form)
}

func (v *Validator) ValidateDeposit(form *DepositForm) ErrorMap {
	form.normalize()
	return v.check(form)
}

func (v *Validator) ValidateCustomer(form *CustomerForm) ErrorMap {
	form.normalize()
	return v.check(form)
}

func (v *Validator) check(form interface{}) ErrorMap {
	errs := ErrorMap{}
	err := v.validate.Struct(form)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["form"] = "Form could not be validated"
		return errs
	}
	for _, fe := range fieldErrs {
		if _, exists := errs[fe.Field()]; exists {
			continue
		}
		errs[fe.Field()] = message(fe.Field(), fe.Tag())
	}
	return errs
}

func message(field, tag string) string {
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := messages["*."+tag]; ok {
		return msg
	}
	return "Invalid value"
}
