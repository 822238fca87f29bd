package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/ceyizapp/ceyiz/internal/api"
	"github.com/ceyizapp/ceyiz/internal/model"
	"github.com/ceyizapp/ceyiz/internal/service"
	"github.com/ceyizapp/ceyiz/internal/view"
)

func (a *app) cmdCategory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ceyiz category <list|add|rm> [flags]")
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		categories, err := a.categories.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("fetching categories: %w", err)
		}
		for _, c := range categories {
			fmt.Printf("%-26s %-18s %s\n", c.ID, c.Icon, c.Title)
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("category add", flag.ContinueOnError)
		var name, icon string
		fs.StringVar(&name, "name", "", "category name")
		fs.StringVar(&icon, "icon", string(model.IconFolder), "icon tag")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if name == "" {
			return fmt.Errorf("category add requires -name")
		}
		if !model.KnownIcon(icon) {
			return fmt.Errorf("unknown icon tag %q", icon)
		}
		_, err := a.categories.Create(ctx, name, model.Icon(icon))
		return err

	case "rm":
		fs := flag.NewFlagSet("category rm", flag.ContinueOnError)
		var id string
		fs.StringVar(&id, "id", "", "category id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if id == "" {
			return fmt.Errorf("category rm requires -id")
		}
		return a.categories.Delete(ctx, id)

	default:
		return fmt.Errorf("unknown category subcommand: %s", args[0])
	}
}

// controllerFor builds a reloaded view controller for one category,
// resolving whether the category is book-typed.
func (a *app) controllerFor(ctx context.Context, categoryID string) (*view.Controller, *model.Category, error) {
	categories, err := a.categories.Fetch(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching categories: %w", err)
	}

	var category *model.Category
	for i := range categories {
		if categories[i].ID == categoryID {
			category = &categories[i]
			break
		}
	}
	if category == nil {
		return nil, nil, fmt.Errorf("category %s not found", categoryID)
	}

	remote := service.NewCategoryItems(a.dowries, categoryID)
	ctrl := view.NewController(remote, category.Book())
	if err := ctrl.Reload(ctx); err != nil {
		return nil, nil, fmt.Errorf("loading items: %w", err)
	}
	return ctrl, category, nil
}

func (a *app) cmdItems(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("items", flag.ContinueOnError)
	var categoryID, search, status, read, sortOrder string
	var all, images bool
	fs.StringVar(&categoryID, "category", "", "category id")
	fs.StringVar(&search, "search", "", "search text (name, description, location)")
	fs.StringVar(&status, "status", "all", "all | purchased | not_purchased")
	fs.StringVar(&read, "read", "all", "all | read | unread (book categories)")
	fs.StringVar(&sortOrder, "sort", "none", "none | asc | desc (price)")
	fs.BoolVar(&all, "all", false, "list every item across categories")
	fs.BoolVar(&images, "images", false, "fetch item photos as data URLs")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	if all {
		items, err := a.dowries.List(ctx, api.DowryQuery{})
		if err != nil {
			return fmt.Errorf("loading items: %w", err)
		}
		printItems(items, false)
		return nil
	}

	if categoryID == "" {
		return fmt.Errorf("items requires -category (or -all)")
	}

	sf := view.StatusFilter(status)
	if sf != view.StatusAll && sf != view.StatusPurchased && sf != view.StatusNotPurchased {
		return fmt.Errorf("invalid -status %q", status)
	}
	rf := view.ReadFilter(read)
	if rf != view.ReadAll && rf != view.ReadRead && rf != view.ReadUnread {
		return fmt.Errorf("invalid -read %q", read)
	}
	so := view.SortOrder(sortOrder)
	if so != view.SortNone && so != view.SortAsc && so != view.SortDesc {
		return fmt.Errorf("invalid -sort %q", sortOrder)
	}

	ctrl, category, err := a.controllerFor(ctx, categoryID)
	if err != nil {
		return err
	}

	ctrl.SetSearch(search)
	ctrl.SetStatusFilter(sf)
	ctrl.SetReadFilter(rf)
	ctrl.SetSort(so)

	printStats(category, ctrl.Stats())
	printItems(ctrl.Items(), category.Book())

	if images {
		printImages(ctx, view.NewImageCache(a.dowries.Image), ctrl.Items())
	}
	return nil
}

// printImages resolves each item's photo through a shared cache, so items
// pointing at the same image fetch it once.
func printImages(ctx context.Context, cache *view.ImageCache, items []model.Item) {
	fmt.Println()
	for _, item := range items {
		if item.ImageID == "" {
			continue
		}
		url, err := cache.Get(ctx, item.ImageID)
		if err != nil {
			fmt.Printf("%-26s (image unavailable)\n", item.ID)
			continue
		}
		fmt.Printf("%-26s %s\n", item.ID, truncate(url, 80))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func printStats(category *model.Category, s view.Stats) {
	fmt.Printf("%s: %d items (%d purchased, %d to buy)\n",
		category.Title, s.Total, s.Purchased, s.NotPurchased)
	if category.Book() {
		fmt.Printf("read: %d, unread: %d (among purchased)\n", s.Read, s.Unread)
	} else {
		fmt.Printf("total %.2f, purchased %.2f, remaining %.2f\n",
			s.TotalPrice, s.PurchasedPrice, s.NotPurchasedPrice)
	}
	fmt.Println()
}

func printItems(items []model.Item, book bool) {
	if len(items) == 0 {
		fmt.Println("no items")
		return
	}
	for _, item := range items {
		status := "to buy"
		if item.Purchased() {
			status = "purchased"
		}
		line := fmt.Sprintf("%-26s %-10s %10.2f  %s", item.ID, status, item.Price, item.Name)
		if book && item.Purchased() {
			if item.IsRead {
				line += " [read]"
			} else {
				line += " [unread]"
			}
		}
		if item.Location != "" {
			line += " @ " + item.Location
		}
		fmt.Println(line)
	}
}

func (a *app) cmdItem(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ceyiz item <add|update|rm|toggle|read> [flags]")
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	switch args[0] {
	case "add":
		return a.itemAdd(ctx, args[1:])
	case "update":
		return a.itemUpdate(ctx, args[1:])
	case "rm":
		return a.itemRemove(ctx, args[1:])
	case "toggle":
		return a.itemToggle(ctx, args[1:])
	case "read":
		return a.itemRead(ctx, args[1:])
	default:
		return fmt.Errorf("unknown item subcommand: %s", args[0])
	}
}

func (a *app) itemAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("item add", flag.ContinueOnError)
	var categoryID, name, description, location, imageID string
	var price float64
	var purchased bool
	fs.StringVar(&categoryID, "category", "", "category id")
	fs.StringVar(&name, "name", "", "item name")
	fs.StringVar(&description, "desc", "", "description")
	fs.StringVar(&location, "location", "", "where the item is or will be bought")
	fs.StringVar(&imageID, "image", "", "uploaded image id")
	fs.Float64Var(&price, "price", 0, "price")
	fs.BoolVar(&purchased, "purchased", false, "already purchased")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if categoryID == "" || name == "" {
		return fmt.Errorf("item add requires -category and -name")
	}
	if price < 0 {
		return fmt.Errorf("price must not be negative")
	}

	status := model.StatusNotPurchased
	if purchased {
		status = model.StatusPurchased
	}

	_, err := a.dowries.Create(ctx, api.NewDowry{
		Name:        name,
		Description: description,
		Category:    categoryID,
		Price:       price,
		Location:    location,
		ImageID:     imageID,
		Status:      status,
	})
	return err
}

func (a *app) itemUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("item update", flag.ContinueOnError)
	var id, name, description, location, imageID string
	var price float64
	fs.StringVar(&id, "id", "", "item id")
	fs.StringVar(&name, "name", "", "new name")
	fs.StringVar(&description, "desc", "", "new description")
	fs.StringVar(&location, "location", "", "new location")
	fs.StringVar(&imageID, "image", "", "new image id")
	fs.Float64Var(&price, "price", -1, "new price")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("item update requires -id")
	}

	var u api.DowryUpdate
	changed := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			u.Name = &name
			changed = true
		case "desc":
			u.Description = &description
			changed = true
		case "location":
			u.Location = &location
			changed = true
		case "image":
			u.ImageID = &imageID
			changed = true
		case "price":
			u.Price = &price
			changed = true
		}
	})
	if !changed {
		return fmt.Errorf("item update requires at least one field flag")
	}
	if u.Price != nil && *u.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}

	return a.dowries.Update(ctx, id, u, service.UpdateOptions{Notify: true})
}

func (a *app) itemRemove(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("item rm", flag.ContinueOnError)
	var id, categoryID string
	fs.StringVar(&id, "id", "", "item id")
	fs.StringVar(&categoryID, "category", "", "category id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" || categoryID == "" {
		return fmt.Errorf("item rm requires -id and -category")
	}

	ctrl, _, err := a.controllerFor(ctx, categoryID)
	if err != nil {
		return err
	}
	return ctrl.Delete(ctx, id)
}

func (a *app) itemToggle(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("item toggle", flag.ContinueOnError)
	var id, categoryID string
	var purchased bool
	fs.StringVar(&id, "id", "", "item id")
	fs.StringVar(&categoryID, "category", "", "category id")
	fs.BoolVar(&purchased, "purchased", true, "target purchase state")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" || categoryID == "" {
		return fmt.Errorf("item toggle requires -id and -category")
	}

	ctrl, _, err := a.controllerFor(ctx, categoryID)
	if err != nil {
		return err
	}
	return ctrl.ToggleStatus(ctx, id, purchased)
}

func (a *app) itemRead(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("item read", flag.ContinueOnError)
	var id, categoryID string
	var read bool
	fs.StringVar(&id, "id", "", "item id")
	fs.StringVar(&categoryID, "category", "", "category id")
	fs.BoolVar(&read, "read", true, "target read state")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" || categoryID == "" {
		return fmt.Errorf("item read requires -id and -category")
	}

	ctrl, category, err := a.controllerFor(ctx, categoryID)
	if err != nil {
		return err
	}
	if !category.Book() {
		return fmt.Errorf("read status only applies to book categories")
	}

	// Silent path: a failed update reverts locally without a notification.
	ctrl.ToggleRead(ctx, id, read)
	return nil
}
