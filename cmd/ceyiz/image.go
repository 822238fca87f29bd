package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ceyizapp/ceyiz/internal/imaging"
)

func (a *app) cmdBook(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != "import" {
		return fmt.Errorf("usage: ceyiz book import -category <id> [-file <path>]")
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("book import", flag.ContinueOnError)
	var categoryID, file string
	fs.StringVar(&categoryID, "category", "", "book category id")
	fs.StringVar(&file, "file", "", "text file with one \"Author – Title\" pair per line (default: stdin)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if categoryID == "" {
		return fmt.Errorf("book import requires -category")
	}

	var text []byte
	var err error
	if file != "" {
		text, err = os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading import file: %w", err)
		}
	} else {
		text, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	if len(text) == 0 {
		return fmt.Errorf("no lines to import")
	}

	// Parsing is entirely server-side; the summary notification comes from
	// the book service.
	_, err = a.books.Import(ctx, string(text), categoryID)
	return err
}

func (a *app) cmdImage(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ceyiz image <upload|save|rm|ocr> [flags]")
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	switch args[0] {
	case "upload":
		return a.imageUpload(ctx, args[1:])
	case "save":
		return a.imageSave(ctx, args[1:])
	case "rm":
		return a.imageRemove(ctx, args[1:])
	case "ocr":
		return a.imageOCR(ctx, args[1:])
	default:
		return fmt.Errorf("unknown image subcommand: %s", args[0])
	}
}

func (a *app) imageUpload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("image upload", flag.ContinueOnError)
	var file string
	var crop imaging.Rect
	var displayW, displayH int
	fs.StringVar(&file, "file", "", "image file (JPEG or PNG)")
	fs.IntVar(&crop.X, "x", 0, "crop left")
	fs.IntVar(&crop.Y, "y", 0, "crop top")
	fs.IntVar(&crop.W, "w", 0, "crop width (0 = no crop)")
	fs.IntVar(&crop.H, "h", 0, "crop height")
	fs.IntVar(&displayW, "display-w", 0, "displayed width the crop was selected at")
	fs.IntVar(&displayH, "display-h", 0, "displayed height the crop was selected at")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if file == "" {
		return fmt.Errorf("image upload requires -file")
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading image file: %w", err)
	}

	filename := filepath.Base(file)
	if crop.W > 0 && crop.H > 0 {
		data, err = imaging.Crop(data, crop, displayW, displayH)
		if err != nil {
			return err
		}
		filename = "cropped-image.jpg"
	}

	id, err := a.dowries.UploadImage(ctx, filename, data)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func (a *app) imageSave(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("image save", flag.ContinueOnError)
	var id, out string
	fs.StringVar(&id, "id", "", "image id")
	fs.StringVar(&out, "out", "", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" || out == "" {
		return fmt.Errorf("image save requires -id and -out")
	}

	data, _, err := a.client.Image(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching image: %w", err)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("writing image file: %w", err)
	}
	a.notifier.Success("image saved to %s", out)
	return nil
}

func (a *app) imageRemove(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("image rm", flag.ContinueOnError)
	var id string
	fs.StringVar(&id, "id", "", "image id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("image rm requires -id")
	}

	if !a.dowries.DeleteImage(ctx, id) {
		return fmt.Errorf("failed to delete image %s", id)
	}
	a.notifier.Success("image deleted")
	return nil
}

func (a *app) imageOCR(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("image ocr", flag.ContinueOnError)
	var id string
	fs.StringVar(&id, "id", "", "image id of a book cover")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("image ocr requires -id")
	}

	info := a.dowries.OCR(ctx, id)
	if info == nil || (info.Title == "" && info.Author == "") {
		fmt.Println("no book details recognized")
		return nil
	}
	fmt.Printf("title:  %s\nauthor: %s\n", info.Title, info.Author)
	return nil
}
