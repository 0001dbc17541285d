package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/prithvi1320/StyleSphere/store"
)

// GET /admin/orders/export
func ExportOrdersToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.IsAdmin() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin access required."})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "UserID", "UserName", "Total", "Status", "Date", "ItemCount"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range s.Orders() {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.UserName)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.Date)
			row.AddCell().SetValue(o.ItemCount)
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
