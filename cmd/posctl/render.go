package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/views"
)

const timeLayout = "2006-01-02 15:04"

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Local().Format(timeLayout)
}

func renderMenu(out io.Writer, v *views.MenuView) error {
	w := newTable(out)
	fmt.Fprintln(w, "ID\tMENU NAME\tPRICE\tCREATED AT\tUPDATED AT")
	for _, item := range v.PageRows() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", item.ID, item.Name, views.FormatCurrency(item.Price),
			formatTime(item.CreatedAt), formatTime(item.UpdatedAt))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "page %d of %d, %d items\n", v.Page+1, v.PageCount(), len(v.Items))
	return err
}

func renderSales(out io.Writer, rows []models.SaleRow) error {
	w := newTable(out)
	fmt.Fprintln(w, "ID\tMENU ITEM\tQUANTITY\tPRICE\tTOTAL\tDATE")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n", row.SalesID, row.MenuName, row.Quantity,
			views.FormatCurrency(row.MenuPrice), views.FormatCurrency(row.TotalPrice), formatTime(row.CreatedAt))
	}
	return w.Flush()
}

func renderAnalytics(out io.Writer, v *views.AnalyticsView) error {
	fmt.Fprintf(out, "Sales Performance Analysis %s to %s\n", v.Range.Start, v.Range.End)
	w := newTable(out)
	fmt.Fprintln(w, "MENU ITEM\tQUANTITY SOLD\tTOTAL REVENUE")
	for _, s := range v.Series() {
		fmt.Fprintf(w, "%s\t%d\t%s\n", s.MenuName, s.Quantity, views.FormatCurrency(s.Revenue))
	}
	quantity, revenue := v.Totals()
	fmt.Fprintf(w, "TOTAL\t%d\t%s\n", quantity, views.FormatCurrency(revenue))
	return w.Flush()
}

func renderSummary(out io.Writer, summary models.SalesSummary) error {
	w := newTable(out)
	fmt.Fprintln(w, "ID\tMENU ITEM\tQUANTITY\tREVENUE")
	for _, item := range summary.Items {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", item.MenuID, item.MenuName, item.Quantity, views.FormatCurrency(item.Revenue))
	}
	fmt.Fprintf(w, "\tTOTAL\t%d\t%s\n", summary.TotalQuantity, views.FormatCurrency(summary.TotalRevenue))
	return w.Flush()
}
