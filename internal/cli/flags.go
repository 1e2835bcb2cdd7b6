package cli

import "github.com/levelupgamer/lu/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--pager"},
			ValueHint:   "<cmd>",
			Description: "Use specified pager for this command",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	jsonFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--json"},
		Description: "Output as JSON",
		Scope:       dispatchers.FlagScopeLocal,
	}

	interactiveFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--interactive", "-i"},
		Description: "Open the interactive storefront",
		Scope:       dispatchers.FlagScopeLocal,
	}

	watchFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--watch", "-w"},
		Description: "Keep running and print again on every change",
		Scope:       dispatchers.FlagScopeLocal,
	}

	HomeFlags = []dispatchers.FlagDescriptor{jsonFlag, interactiveFlag}

	CatalogFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--search"},
			ValueHint:   "<text>",
			Description: "Only products whose name contains text (case-insensitive)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--category"},
			ValueHint:   "<name>",
			Description: "Only products in this category (All for every category)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		jsonFlag,
		interactiveFlag,
	}

	JSONFlags = []dispatchers.FlagDescriptor{jsonFlag}

	ReviewAddFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--comment"},
			ValueHint:   "<text>",
			Description: "Optional review text",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	WatchFlags = []dispatchers.FlagDescriptor{watchFlag}

	EventsListFlags = []dispatchers.FlagDescriptor{jsonFlag, watchFlag}

	eventFieldFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--starts"},
			ValueHint:   "<time>",
			Description: "Start time: YYYY-MM-DD HH:MM, YYYY-MM-DD or RFC 3339",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--location"},
			ValueHint:   "<text>",
			Description: "Where the event takes place",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--description"},
			ValueHint:   "<text>",
			Description: "Longer description",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	EventsAddFlags = append([]dispatchers.FlagDescriptor{
		{
			Names:       []string{"--title"},
			ValueHint:   "<text>",
			Description: "Event title (required)",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}, eventFieldFlags...)

	EventsUpdateFlags = append([]dispatchers.FlagDescriptor{
		{
			Names:       []string{"--title"},
			ValueHint:   "<text>",
			Description: "New title",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}, eventFieldFlags...)

	ConfigUnsetFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--all"},
			Description: "Delete all the config key=value pairs",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	LogsFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--limit"},
			ValueHint:   "<n>",
			Description: "Number of lines to show (default 50)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		jsonFlag,
	}

	ServeFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--addr"},
			ValueHint:   "<host:port>",
			Description: "Listen address (overrides LU_ADDR)",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	VersionFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--verbose"},
			Description: "Include Go version and platform",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	CompletionsFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--script"},
			Description: "Print the completion script instead of install instructions",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)
