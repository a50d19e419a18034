package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rusted-os/ramfat"
	"github.com/spf13/afero"
)

// main is just a example main to play with the ramdisk without a terminal.
func main() {
	store := ramfat.New()
	fs := ramfat.NewFs(store)

	argsWithoutProg := os.Args[1:]
	if len(argsWithoutProg) > 0 {
		n, err := ramfat.Import(store, afero.NewOsFs(), argsWithoutProg[0])
		if err != nil {
			fmt.Println(err)
		}
		fmt.Printf("Imported %d files from %v\n\n", n, argsWithoutProg[0])
	} else {
		if err := afero.WriteFile(fs, "README.TXT", []byte("Welcome to the ramdisk."), 0o644); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := store.Create(ramfat.ParseName("LOG1")); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	stats := store.Stats()
	fmt.Printf("Used slots %v, free slots %v, free clusters %v\n\n", stats.UsedSlots, stats.FreeSlots, stats.FreeClusters)

	afero.Walk(fs, "", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Println(err)
			return err
		}
		fmt.Println(path, info.IsDir(), info.Size(), info.ModTime())
		return nil
	})

	entries := store.List(0)
	if len(entries) == 0 {
		return
	}

	name := entries[0].FileName().String() + ".TXT"
	file, err := fs.Open(name)
	if err != nil {
		fmt.Println("could not open", name, err)
		os.Exit(1)
	}
	defer file.Close()

	buffer, err := io.ReadAll(file)
	if err != nil {
		fmt.Println("could not read the file", err)
		os.Exit(1)
	}
	fmt.Println("\n\nContent of " + name + ":\n\n" + string(buffer))
}
