package store

import "github.com/levelupgamer/lu/internal/domain"

// DemoCatalog is the built-in catalog loaded by `lu catalog seed`.
var DemoCatalog = []domain.Product{
	{Code: "JM001", Name: "Catan", Category: "Juegos de Mesa", Price: 29990, Quantity: 12, Image: "catan.png",
		Description: "Classic trading and building strategy game for 3 to 4 players."},
	{Code: "JM002", Name: "Carcassonne", Category: "Juegos de Mesa", Price: 24990, Quantity: 3, Image: "carcassonne.png",
		Description: "Tile placement game where players build a medieval landscape."},
	{Code: "AC001", Name: "Controlador Inalámbrico Xbox Series X", Category: "Accesorios", Price: 59990, Quantity: 8, Image: "xbox_controller.png",
		Description: "Wireless controller with textured grips and a hybrid D-pad."},
	{Code: "AC002", Name: "Auriculares Gamer HyperX Cloud II", Category: "Accesorios", Price: 79990, Quantity: 0, Image: "hyperx_cloud2.png",
		Description: "Headset with 7.1 virtual surround sound and a detachable microphone."},
	{Code: "CO001", Name: "PlayStation 5", Category: "Consolas", Price: 549990, Quantity: 2, Image: "ps5.png",
		Description: "Next generation console with ultra-fast SSD and ray tracing."},
	{Code: "CG001", Name: "PC Gamer ASUS ROG Strix", Category: "Computadores Gamers", Price: 1299990, Quantity: 4, Image: "rog_strix.png",
		Description: "High performance gaming desktop with the latest graphics card."},
	{Code: "SG001", Name: "Silla Gamer Secretlab Titan", Category: "Sillas Gamers", Price: 349990, Quantity: 6, Image: "secretlab_titan.png",
		Description: "Ergonomic chair with adjustable lumbar support."},
	{Code: "MS001", Name: "Mouse Gamer Logitech G502 HERO", Category: "Mouse", Price: 49990, Quantity: 15, Image: "g502.png",
		Description: "25K sensor mouse with 11 programmable buttons."},
	{Code: "MP001", Name: "Mousepad Razer Goliathus Extended Chroma", Category: "Mousepad", Price: 29990, Quantity: 9, Image: "goliathus.png",
		Description: "Extended RGB mousepad covering keyboard and mouse."},
	{Code: "PP001", Name: "Polera Gamer Personalizada 'Level-Up'", Category: "Poleras Personalizadas", Price: 14990, Quantity: 20, Image: "polera.png",
		Description: "Custom t-shirt with your gamer tag."},
	{Code: "VJ001", Name: "The Legend of Zelda: Tears of the Kingdom", Category: "Videojuegos", Price: 59990, Quantity: 5, Image: "zelda_totk.png",
		Description: "Open world adventure across the skies and depths of Hyrule."},
}
