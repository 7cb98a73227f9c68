// Package reports builds spreadsheet exports of the reservations ledger.
package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/grandstay/hotel-backend/internal/models"
)

const sheetName = "Reservations"

var headers = []string{
	"Reservation ID", "Guest", "Email", "Hotel", "Room", "Room Type",
	"Check-in", "Check-out", "Adults", "Children", "Total Amount", "Status",
}

// WriteReservationsWorkbook renders the joined reservations ledger as an
// xlsx workbook and writes it to w.
func WriteReservationsWorkbook(w io.Writer, reservations []models.ReservationDetail) error {
	f, err := buildWorkbook(reservations)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}

func buildWorkbook(reservations []models.ReservationDetail) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)

	for i, res := range reservations {
		row := i + 2
		values := []interface{}{
			res.ReservationID,
			res.GuestName,
			res.GuestEmail,
			res.HotelName,
			res.RoomNumber,
			res.RoomType,
			res.CheckInDate.Format(models.DateLayout),
			res.CheckOutDate.Format(models.DateLayout),
			res.Adults,
			res.Children,
			res.TotalAmount,
			string(res.Status),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 14)
	_ = f.SetColWidth(sheetName, "B", "F", 22)
	_ = f.SetColWidth(sheetName, "G", "L", 14)

	_ = f.DeleteSheet("Sheet1")

	return f, nil
}
