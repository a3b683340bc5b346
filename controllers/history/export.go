package historyControllers

import (
	"net/http"
	"strings"

	"github.com/ayushrskiaa/Restaurant-Reservation/lifecycle"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportOrdersToExcel streams the full order history as an .xlsx download.
// Accepts the same ?date= filter as the listing endpoint.
func ExportOrdersToExcel(m *lifecycle.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := m.ListOrders(c.Request.Context(), c.Query("date"))
		if err != nil {
			respondError(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "OrderRef", "CustomerName", "PhoneNumber", "Address",
			"Items", "TotalPrice", "PaymentMethod", "PaymentDone",
			"Status", "CreatedAt", "DeliveredAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(int(o.ID))
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.PhoneNumber)
			row.AddCell().SetValue(o.Address)

			var items []string
			for _, item := range o.Items {
				items = append(items, item.Title)
			}
			row.AddCell().SetValue(strings.Join(items, ", "))

			row.AddCell().SetValue(o.TotalPrice)
			row.AddCell().SetValue(string(o.PaymentMethod))
			row.AddCell().SetValue(o.PaymentDone)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			if o.DeliveredAt != nil {
				row.AddCell().SetValue(o.DeliveredAt.Format("2006-01-02 15:04:05"))
			} else {
				row.AddCell().SetValue("")
			}
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to write Excel file"})
			return
		}
	}
}
