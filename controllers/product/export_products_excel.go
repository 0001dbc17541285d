package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/prithvi1320/StyleSphere/store"
)

// GET /admin/products/export
func ExportProductsToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.IsAdmin() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin access required."})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Description", "Price", "Category", "Sizes", "Colors", "Rating", "ReviewCount"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range s.Products() {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(strings.Join(p.Sizes, ","))
			row.AddCell().SetValue(strings.Join(p.Colors, ","))
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.ReviewCount)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
