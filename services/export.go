package services

import (
	"context"
	"fmt"

	"evdealer/utils"

	"github.com/xuri/excelize/v2"
)

const (
	customerSheet          = "Customers"
	CustomerExportFilename = "customers.xlsx"
)

var customerHeader = []string{"id", "full_name", "phone", "email", "identity_card", "address", "date_of_birth", "sales_staff_id", "created_at"}

// Export 匯出客戶清單為 xlsx；身分證號遮罩後輸出
func (s *CustomerService) Export(ctx context.Context, q, staffID string) (string, []byte, error) {
	customers, err := s.search(ctx, q, staffID)
	if err != nil {
		return "", nil, err
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()
	if err := xl.SetSheetName(xl.GetSheetName(0), customerSheet); err != nil {
		return "", nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := customerHeader
	if err := xl.SetSheetRow(customerSheet, "A1", &header); err != nil {
		return "", nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, c := range customers {
		record := []string{
			c.ID,
			c.FullName,
			c.Phone,
			c.Email,
			utils.MaskIdentity(c.IdentityCard),
			c.Address,
			c.DateOfBirth,
			c.SalesStaffID,
			c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := xl.SetSheetRow(customerSheet, cell, &record); err != nil {
			return "", nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return CustomerExportFilename, buf.Bytes(), nil
}
