package main

import (
	"context"
	"log"
	"os"

	"townmate-be/internal/model"
	"townmate-be/internal/repository/implementation"
	"townmate-be/pkg/database"
	"townmate-be/pkg/store"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("🌱 Seeding place catalog...")

	repo := implementation.NewPlaceRepository(db)
	if err := repo.UpsertBulk(context.Background(), catalog()); err != nil {
		color.Red("Seed failed: %v", err)
		os.Exit(1)
	}

	color.Green("Done: %d places upserted", len(catalog()))
}

// catalog is the curated town catalog. IDs are stable slugs so re-running
// the seeder updates rows instead of duplicating them.
func catalog() []*model.Place {
	return []*model.Place{
		{
			ID: "anchor-coffee", Name: "Anchor Coffee", Category: store.CategoryCafes,
			Subcategory: "coffee", Tags: []string{"coffee", "pastries", "chill"},
			Features: []string{"wifi", "outlets", "outdoor-seating"}, Price: store.PriceCheap,
			Rating: 4.6, Lat: 34.4128, Lng: -119.8610, DistanceLabel: "8 min walk",
			Description: "Slow-bar pourovers and a sunny patio that fills up before finals.",
		},
		{
			ID: "night-owl-study", Name: "Night Owl", Category: store.CategoryStudySpots,
			Subcategory: "cafe", Tags: []string{"coffee", "study", "late-night"},
			Features: []string{"wifi", "outlets", "open-late", "quiet"}, Price: store.PriceCheap,
			Rating: 4.3, Lat: 34.4122, Lng: -119.8568, DistanceLabel: "5 min walk",
			Description: "Open until 2am, quiet back room, bottomless drip.",
		},
		{
			ID: "the-breakfast-shack", Name: "The Breakfast Shack", Category: store.CategoryRestaurants,
			Subcategory: "breakfast", Tags: []string{"breakfast", "brunch", "casual"},
			Features: []string{"outdoor-seating", "takeout"}, Price: store.PriceCheap,
			Rating: 4.5, Lat: 34.4135, Lng: -119.8555, DistanceLabel: "6 min walk",
			Description: "Breakfast burritos with a line out the door on weekends.",
		},
		{
			ID: "taqueria-del-sol", Name: "Taqueria del Sol", Category: store.CategoryRestaurants,
			Subcategory: "mexican", Tags: []string{"tacos", "casual", "late-night", "takeout"},
			Features: []string{"open-late", "takeout", "group-friendly"}, Price: store.PriceCheap,
			Rating: 4.7, Lat: 34.4110, Lng: -119.8546, DistanceLabel: "4 min walk",
			Description: "Al pastor off the trompo until midnight.",
		},
		{
			ID: "luna-rossa", Name: "Luna Rossa", Category: store.CategoryRestaurants,
			Subcategory: "italian", Tags: []string{"pasta", "date-night", "wine"},
			Features: []string{"reservations", "quiet", "romantic"}, Price: store.PriceSplurge,
			Rating: 4.8, Lat: 34.4219, Lng: -119.7023, DistanceLabel: "15 min drive",
			Description: "Handmade pasta downtown; book ahead on weekends.",
		},
		{
			ID: "harbor-house", Name: "Harbor House", Category: store.CategoryRestaurants,
			Subcategory: "seafood", Tags: []string{"seafood", "date-night", "views"},
			Features: []string{"reservations", "ocean-view", "romantic"}, Price: store.PriceModerate,
			Rating: 4.4, Lat: 34.4041, Lng: -119.6920, DistanceLabel: "18 min drive",
			Description: "Harborside seafood with sunset views from the deck.",
		},
		{
			ID: "brass-tap", Name: "The Brass Tap", Category: store.CategoryBars,
			Subcategory: "craft-beer", Tags: []string{"beer", "groups", "trivia"},
			Features: []string{"group-friendly", "open-late", "games"}, Price: store.PriceModerate,
			Rating: 4.2, Lat: 34.4133, Lng: -119.8552, DistanceLabel: "5 min walk",
			Description: "Thirty taps, trivia on Tuesdays, loud in the best way.",
		},
		{
			ID: "dice-and-drafts", Name: "Dice & Drafts", Category: store.CategoryBars,
			Subcategory: "board-game-bar", Tags: []string{"board-games", "beer", "groups", "chill"},
			Features: []string{"games", "group-friendly"}, Price: store.PriceModerate,
			Rating: 4.5, Lat: 34.4186, Lng: -119.6989, DistanceLabel: "14 min drive",
			Description: "A wall of four hundred games and a solid local tap list.",
		},
		{
			ID: "velvet-note", Name: "The Velvet Note", Category: store.CategoryLiveMusic,
			Subcategory: "jazz", Tags: []string{"live-music", "jazz", "date-night", "cocktails"},
			Features: []string{"live-shows", "reservations", "romantic"}, Price: store.PriceModerate,
			Rating: 4.6, Lat: 34.4203, Lng: -119.6995, DistanceLabel: "14 min drive",
			Description: "Small jazz room with sets at 8 and 10 most nights.",
		},
		{
			ID: "karaoke-kat", Name: "Karaoke Kat", Category: store.CategoryBars,
			Subcategory: "karaoke", Tags: []string{"karaoke", "groups", "late-night"},
			Features: []string{"private-rooms", "open-late", "group-friendly"}, Price: store.PriceModerate,
			Rating: 4.1, Lat: 34.4199, Lng: -119.7010, DistanceLabel: "14 min drive",
			Description: "Private rooms by the hour; book the big room for birthdays.",
		},
		{
			ID: "lagoon-loop", Name: "Lagoon Loop Trail", Category: store.CategoryHikes,
			Subcategory: "easy", Tags: []string{"easy", "views", "birds", "flat"},
			Features: []string{"free", "stroller-friendly"}, Price: store.PriceFree,
			Rating: 4.4, Lat: 34.4097, Lng: -119.8479, DistanceLabel: "10 min walk",
			DurationLabel: "45 min", Description: "Flat lagoon loop with herons at dusk.",
		},
		{
			ID: "tempest-ridge", Name: "Tempest Ridge", Category: store.CategoryHikes,
			Subcategory: "strenuous", Tags: []string{"strenuous", "views", "sunset-views"},
			Features: []string{"free", "steep"}, Price: store.PriceFree,
			Rating: 4.8, Lat: 34.4920, Lng: -119.7130, DistanceLabel: "25 min drive",
			DurationLabel: "3-4 hrs", Description: "Steep switchbacks to a ridge view of the whole coastline.",
		},
		{
			ID: "seven-falls", Name: "Seven Falls", Category: store.CategoryHikes,
			Subcategory: "moderate", Tags: []string{"moderate", "swimming", "creek"},
			Features: []string{"free", "swimming-hole"}, Price: store.PriceFree,
			Rating: 4.7, Lat: 34.4775, Lng: -119.7090, DistanceLabel: "22 min drive",
			DurationLabel: "2-3 hrs", Description: "Creek scramble to tiered pools; best after winter rain.",
		},
		{
			ID: "sands-beach", Name: "Sands Beach", Category: store.CategoryBeaches,
			Subcategory: "surf", Tags: []string{"surf", "sunset-views", "tanning", "swimming"},
			Features: []string{"free", "parking"}, Price: store.PriceFree,
			Rating: 4.6, Lat: 34.4100, Lng: -119.8790, DistanceLabel: "20 min walk",
			Description: "Long sandy stretch past the point; the classic sunset spot.",
		},
		{
			ID: "cove-beach", Name: "The Cove", Category: store.CategoryBeaches,
			Subcategory: "swimming", Tags: []string{"swimming", "tanning", "calm-water", "chill"},
			Features: []string{"free"}, Price: store.PriceFree,
			Rating: 4.5, Lat: 34.4052, Lng: -119.8440, DistanceLabel: "12 min walk",
			Description: "Sheltered cove with calm water, good for a real swim.",
		},
		{
			ID: "bluff-park", Name: "Bluff Park", Category: store.CategoryParks,
			Subcategory: "picnic", Tags: []string{"picnic", "sunset-views", "chill", "views"},
			Features: []string{"free", "tables", "bbq"}, Price: store.PriceFree,
			Rating: 4.3, Lat: 34.4089, Lng: -119.8525, DistanceLabel: "9 min walk",
			Description: "Clifftop lawn with grills and a straight shot west for sunsets.",
		},
		{
			ID: "inspiration-point", Name: "Inspiration Point", Category: store.CategoryViewpoints,
			Subcategory: "overlook", Tags: []string{"views", "sunset-views", "photo-spot"},
			Features: []string{"free"}, Price: store.PriceFree,
			Rating: 4.7, Lat: 34.4575, Lng: -119.7850, DistanceLabel: "15 min drive",
			DurationLabel: "1 hr", Description: "Short walk from the pullout to a panoramic coastal overlook.",
		},
		{
			ID: "maritime-museum", Name: "Maritime Museum", Category: store.CategoryMuseums,
			Subcategory: "history", Tags: []string{"history", "indoor", "rainy-day"},
			Features: []string{"indoor", "guided-tours"}, Price: store.PriceCheap,
			Rating: 4.2, Lat: 34.4040, Lng: -119.6935, DistanceLabel: "18 min drive",
			DurationLabel: "1-2 hrs", Description: "Shipwrecks, surf history and a working periscope.",
		},
		{
			ID: "contemporary-arts", Name: "Contemporary Arts Forum", Category: store.CategoryMuseums,
			Subcategory: "art", Tags: []string{"art", "indoor", "rainy-day", "free-thursdays"},
			Features: []string{"indoor", "free"}, Price: store.PriceFree,
			Rating: 4.1, Lat: 34.4180, Lng: -119.6980, DistanceLabel: "14 min drive",
			DurationLabel: "1 hr", Description: "Rotating exhibitions; free entry on Thursday evenings.",
		},
		{
			ID: "thursday-market", Name: "Thursday Farmers Market", Category: store.CategoryMarkets,
			Subcategory: "farmers-market", Tags: []string{"produce", "street-food", "chill"},
			Features: []string{"outdoor", "weekly"}, Price: store.PriceCheap,
			Rating: 4.5, Lat: 34.4140, Lng: -119.8489, DistanceLabel: "2 min walk",
			Description: "Local produce and food stalls, Thursdays 3 to 7.",
		},
		{
			ID: "pedal-rentals", Name: "Pedal Rentals", Category: store.CategoryActivities,
			Subcategory: "bikes", Tags: []string{"bike", "outdoor", "groups"},
			Features: []string{"rentals", "group-friendly"}, Price: store.PriceCheap,
			Rating: 4.4, Lat: 34.4118, Lng: -119.8570, DistanceLabel: "5 min walk",
			DurationLabel: "2-3 hrs", Description: "Beach cruisers and tandems; the bluff path starts next door.",
		},
		{
			ID: "kayak-point", Name: "Kayak Point Outfitters", Category: store.CategoryActivities,
			Subcategory: "water", Tags: []string{"kayak", "swimming", "outdoor", "groups"},
			Features: []string{"rentals", "guided-tours"}, Price: store.PriceModerate,
			Rating: 4.6, Lat: 34.4035, Lng: -119.6925, DistanceLabel: "18 min drive",
			DurationLabel: "2-3 hrs", Description: "Harbor kayak rentals and a sea-cave tour at low tide.",
		},
		{
			ID: "noodle-bar-ten", Name: "Noodle Bar Ten", Category: store.CategoryRestaurants,
			Subcategory: "ramen", Tags: []string{"ramen", "casual", "late-night", "comfort-food"},
			Features: []string{"open-late", "counter-seating"}, Price: store.PriceModerate,
			Rating: 4.5, Lat: 34.4130, Lng: -119.8559, DistanceLabel: "5 min walk",
			Description: "Tonkotsu until 1am; solo counter seats move fast.",
		},
		{
			ID: "garden-bistro", Name: "Garden Bistro", Category: store.CategoryRestaurants,
			Subcategory: "californian", Tags: []string{"brunch", "date-night", "vegetarian-friendly"},
			Features: []string{"reservations", "outdoor-seating", "quiet"}, Price: store.PriceModerate,
			Rating: 4.4, Lat: 34.4350, Lng: -119.8270, DistanceLabel: "10 min drive",
			Description: "Courtyard tables under string lights, strong brunch game.",
		},
	}
}
