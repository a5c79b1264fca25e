package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/client"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/views"
)

func subcommand(name string, args []string, define func(fs *flag.FlagSet)) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	define(fs)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	return nil
}

func runMenu(ctx context.Context, api *client.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	v := views.NewMenuView(api)

	switch args[0] {
	case "list":
		var page, rows int
		if err := subcommand("menu list", args[1:], func(fs *flag.FlagSet) {
			fs.IntVar(&page, "page", 1, "page number, starting at 1")
			fs.IntVar(&rows, "rows", views.DefaultRowsPerPage, "rows per page")
		}); err != nil {
			return err
		}
		if err := v.Load(ctx); err != nil {
			return errors.New(v.Err)
		}
		v.SetRowsPerPage(rows)
		v.SetPage(page - 1)
		return renderMenu(out, v)

	case "add":
		var name, price string
		if err := subcommand("menu add", args[1:], func(fs *flag.FlagSet) {
			fs.StringVar(&name, "name", "", "menu name")
			fs.StringVar(&price, "price", "", "menu price")
		}); err != nil {
			return err
		}
		v.Dispatch(views.NameChanged{Name: name})
		v.Dispatch(views.PriceChanged{Price: price})
		if err := v.Submit(ctx); err != nil {
			return errors.New(v.Err)
		}
		fmt.Fprintln(out, "Menu added successfully")
		return renderMenu(out, v)

	case "edit":
		var id uint
		var name, price string
		if err := subcommand("menu edit", args[1:], func(fs *flag.FlagSet) {
			fs.UintVar(&id, "id", 0, "menu id")
			fs.StringVar(&name, "name", "", "new name, unchanged when empty")
			fs.StringVar(&price, "price", "", "new price, unchanged when empty")
		}); err != nil {
			return err
		}
		if id == 0 {
			return errUsage
		}
		if err := v.Load(ctx); err != nil {
			return errors.New(v.Err)
		}
		found := false
		for _, item := range v.Items {
			if item.ID == id {
				v.Dispatch(views.EditStarted{Item: item})
				found = true
				break
			}
		}
		if !found {
			return errors.New("Menu item not found")
		}
		if name != "" {
			v.Dispatch(views.NameChanged{Name: name})
		}
		if price != "" {
			v.Dispatch(views.PriceChanged{Price: price})
		}
		if err := v.Submit(ctx); err != nil {
			return errors.New(v.Err)
		}
		fmt.Fprintln(out, "Menu updated successfully")
		return renderMenu(out, v)

	case "delete":
		var id uint
		if err := subcommand("menu delete", args[1:], func(fs *flag.FlagSet) {
			fs.UintVar(&id, "id", 0, "menu id")
		}); err != nil {
			return err
		}
		if id == 0 {
			return errUsage
		}
		if err := v.Delete(ctx, id); err != nil {
			return errors.New(v.Err)
		}
		fmt.Fprintln(out, "Menu deleted successfully")
		return renderMenu(out, v)
	}
	return errUsage
}

func runSales(ctx context.Context, api *client.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	v := views.NewSalesView(api)

	switch args[0] {
	case "list":
		if err := v.Load(ctx); err != nil {
			return errors.New(v.Err)
		}
		return renderSales(out, v.Sales)

	case "add":
		var menuID uint
		var qty int
		if err := subcommand("sales add", args[1:], func(fs *flag.FlagSet) {
			fs.UintVar(&menuID, "menu", 0, "menu id")
			fs.IntVar(&qty, "qty", 1, "quantity")
		}); err != nil {
			return err
		}
		v.SelectedMenu = menuID
		v.Quantity = qty
		if err := v.Submit(ctx); err != nil {
			return errors.New(v.Err)
		}
		fmt.Fprintln(out, v.Success)
		return renderSales(out, v.Sales)

	case "delete":
		var id uint
		if err := subcommand("sales delete", args[1:], func(fs *flag.FlagSet) {
			fs.UintVar(&id, "id", 0, "sale id")
		}); err != nil {
			return err
		}
		if id == 0 {
			return errUsage
		}
		if err := v.Delete(ctx, id); err != nil {
			return errors.New(v.Err)
		}
		fmt.Fprintln(out, "Sale deleted successfully")
		return renderSales(out, v.Sales)
	}
	return errUsage
}

func rangeFlags(name string, args []string) (string, string, error) {
	var start, end string
	err := subcommand(name, args, func(fs *flag.FlagSet) {
		fs.StringVar(&start, "start", "", "first day, YYYY-MM-DD")
		fs.StringVar(&end, "end", "", "last day, YYYY-MM-DD")
	})
	return start, end, err
}

func runAnalytics(ctx context.Context, api *client.Client, args []string, out io.Writer, now func() time.Time) error {
	start, end, err := rangeFlags("analytics", args)
	if err != nil {
		return err
	}
	v := views.NewAnalyticsView(api, views.WithClock(now))
	if err := v.SetRange(ctx, start, end); err != nil {
		return errors.New(v.Err)
	}
	return renderAnalytics(out, v)
}

func runSummary(ctx context.Context, api *client.Client, args []string, out io.Writer) error {
	start, end, err := rangeFlags("summary", args)
	if err != nil {
		return err
	}
	summary, err := api.SalesSummary(ctx, start, end)
	if err != nil {
		return err
	}
	return renderSummary(out, summary)
}
