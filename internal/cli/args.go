package cli

import "github.com/levelupgamer/lu/internal/dispatchers"

var (
	ProductCodeArg = []dispatchers.ArgSpec{
		{
			Name:        "code",
			Description: "Product code (e.g., JM001)",
			Required:    true,
		},
	}

	ReviewArgs = []dispatchers.ArgSpec{
		ProductCodeArg[0],
		{
			Name:        "rating",
			Description: "Whole number of stars from 1 to 5",
			Required:    true,
		},
	}

	IDArg = []dispatchers.ArgSpec{
		{
			Name:        "id",
			Description: "Identifier shown by the list command",
			Required:    true,
		},
	}

	OrderStatusArgs = []dispatchers.ArgSpec{
		IDArg[0],
		{
			Name:        "status",
			Description: "processing, shipped, delivered or cancelled",
			Required:    true,
		},
	}

	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
	}

	OptionalConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key (omit with --all)",
			Required:    false,
		},
	}

	ConfigKeyValueArgs = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    true,
		},
	}

	ThemeNameArg = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "Theme name (e.g., default, neon)",
			Required:    true,
		},
	}

	OptionalShellArg = []dispatchers.ArgSpec{
		{
			Name:        "shell",
			Description: "bash, zsh or fish (defaults to $SHELL)",
			Required:    false,
		},
	}
)
