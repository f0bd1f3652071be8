package report

import (
	"fmt"
	"io"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/xuri/excelize/v2"
)

var orderReportHeader = []any{"Order ID", "Total Price", "Status", "User ID", "Created At"}

// WriteOrderReport 依序寫入每筆訂單後輸出 xlsx
// 建立時間以 loc 時區格式化
func WriteOrderReport(w io.Writer, orders []model.OrderModel, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, constants.ReportSheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(constants.ReportSheetName, "A1", &orderReportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, o := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			o.ID,
			o.TotalPrice.InexactFloat64(),
			string(o.Status),
			o.UserID,
			o.CreatedAt.In(loc).Format(constants.ReportTimeLayout),
		}
		if err := f.SetSheetRow(constants.ReportSheetName, cell, &row); err != nil {
			return fmt.Errorf("write order %d: %w", o.ID, err)
		}
	}

	return f.Write(w)
}
