package cli

import (
	"context"
	"fmt"

	"github.com/morikawa/riskadvisor/internal/client/models"
)

func printMasterData(items []models.MasterDataItem) {
	if len(items) == 0 {
		fmt.Println("(empty)")
		return
	}
	for _, item := range items {
		if item.Description != "" {
			fmt.Printf("  %s  %s — %s\n", item.ID, item.Name, item.Description)
		} else {
			fmt.Printf("  %s  %s\n", item.ID, item.Name)
		}
	}
}

func (a *App) Industries(ctx context.Context) {
	items, err := a.masterData.Industries(ctx)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("Industries:")
	printMasterData(items)
}

func (a *App) AlcoholTypes(ctx context.Context) {
	items, err := a.masterData.AlcoholTypes(ctx)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("Alcohol types:")
	printMasterData(items)
}
