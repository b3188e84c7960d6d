package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"evdealer/models"
	"evdealer/repository/repotest"
	"evdealer/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newCustomerService(customers *repotest.Customers) (*CustomerService, *repotest.Payments) {
	payments := &repotest.Payments{}
	return NewCustomerService(customers, payments, testValidator(), testCipher()), payments
}

func customerForm() *validators.CustomerForm {
	return &validators.CustomerForm{
		FullName:     "Pham Minh D",
		Phone:        "0987654321",
		Email:        "d@example.com",
		IdentityCard: "079088001234",
		Address:      "1 Nguyen Hue, HCMC",
		DateOfBirth:  "1990-05-12",
	}
}

func TestCustomerCreateEncryptsIdentityCard(t *testing.T) {
	ctx := context.Background()
	repo := repotest.NewCustomers()
	svc, _ := newCustomerService(repo)

	customer, err := svc.Create(ctx, customerForm(), "staff-1")
	require.NoError(t, err)
	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "staff-1", customer.SalesStaffID)
	assert.Equal(t, "079088001234", customer.IdentityCard)

	stored := repo.Items[customer.ID]
	assert.NotEqual(t, "079088001234", stored.IdentityCard)
	assert.NotEmpty(t, stored.IdentityCard)

	got, err := svc.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "079088001234", got.IdentityCard)
}

func TestCustomerCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCustomerService(repotest.NewCustomers())

	_, err := svc.Create(ctx, customerForm(), "staff-1")
	require.NoError(t, err)

	form := customerForm()
	form.Email = "other@example.com"
	_, err = svc.Create(ctx, form, "staff-2")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCustomerCreateValidation(t *testing.T) {
	svc, _ := newCustomerService(repotest.NewCustomers())
	form := customerForm()
	form.Phone = "090-123-4567"
	form.Email = "not-an-email"

	_, err := svc.Create(context.Background(), form, "staff-1")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errors, 2)
	assert.Contains(t, verr.Errors, "phone")
	assert.Contains(t, verr.Errors, "email")
}

func TestCustomerListAndListMine(t *testing.T) {
	ctx := context.Background()
	repo := repotest.NewCustomers(
		models.Customer{ID: "c1", FullName: "An", Email: "an@example.com", Phone: "0900000001", SalesStaffID: "s1"},
		models.Customer{ID: "c2", FullName: "Binh", Email: "binh@example.com", Phone: "0900000002", SalesStaffID: "s2"},
		models.Customer{ID: "c3", FullName: "Chi", Email: "chi@example.com", Phone: "0900000003", SalesStaffID: "s1"},
	)
	svc, _ := newCustomerService(repo)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := svc.List(ctx, "binh")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "c2", found[0].ID)

	mine, err := svc.ListMine(ctx, "", "s1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	mine, err = svc.ListMine(ctx, "0900000003", "s1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "c3", mine[0].ID)
}

func TestCustomerUndecryptableIdentityIsBlanked(t *testing.T) {
	repo := repotest.NewCustomers(models.Customer{ID: "c1", FullName: "An", IdentityCard: "garbage"})
	svc, _ := newCustomerService(repo)

	got, err := svc.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, got.IdentityCard)
}

func TestCustomerUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCustomerService(repotest.NewCustomers())

	created, err := svc.Create(ctx, customerForm(), "staff-1")
	require.NoError(t, err)

	form := customerForm()
	form.Address = "99 Tran Phu, Da Nang"
	form.IdentityCard = ""
	updated, err := svc.Update(ctx, created.ID, form)
	require.NoError(t, err)
	assert.Equal(t, "99 Tran Phu, Da Nang", updated.Address)
	assert.Equal(t, "staff-1", updated.SalesStaffID)
	assert.Empty(t, updated.IdentityCard)

	_, err = svc.Update(ctx, "missing", customerForm())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerPayments(t *testing.T) {
	ctx := context.Background()
	svc, payments := newCustomerService(repotest.NewCustomers(models.Customer{ID: "c1", FullName: "An"}))
	require.NoError(t, payments.Create(ctx, &models.Payment{ID: "p1", CustomerID: "c1", Amount: 10}))
	require.NoError(t, payments.Create(ctx, &models.Payment{ID: "p2", CustomerID: "c9", Amount: 20}))

	list, err := svc.Payments(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p1", list[0].ID)

	_, err = svc.Payments(ctx, "c9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerExport(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCustomerService(repotest.NewCustomers())
	_, err := svc.Create(ctx, customerForm(), "staff-1")
	require.NoError(t, err)

	name, data, err := svc.Export(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, CustomerExportFilename, name)

	xl, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer xl.Close()

	rows, err := xl.GetRows(customerSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, customerHeader, rows[0])
	assert.Equal(t, "Pham Minh D", rows[1][1])
	assert.Equal(t, "********1234", rows[1][4])
}
