package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/config"
	dbpkg "github.com/salonbelle/booking-api/internal/db"
	"github.com/salonbelle/booking-api/internal/models"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

var servicesSeed = []models.Service{
	{Name: "Soins de visage", Description: "Traitement complet du visage pour une peau rayonnante", PriceMin: 10, DurationMin: 45, Category: "Soins", IsActive: true},
	{Name: "Coiffure homme", Description: "Coupe et style pour hommes", PriceMin: 3, DurationMin: 30, Category: "Coiffure", IsActive: true},
	{Name: "Draid Locks", Description: "Tresses et locks de qualite professionnelle", PriceMin: 20, PriceMax: intPtr(60), DurationMin: 120, Category: "Coiffure", IsActive: true},
	{Name: "Coiffure dame ceremonie", Description: "Coiffure elegante pour occasions speciales", PriceMin: 10, DurationMin: 90, Category: "Coiffure", IsActive: true},
	{Name: "Manucure", Description: "Soin des ongles et des mains", PriceMin: 5, PriceMax: intPtr(10), DurationMin: 45, Category: "Soins", IsActive: true},
	{Name: "Tresse", Description: "Tresses variees selon modele choisi", PriceMin: 2, PriceMax: intPtr(40), DurationMin: 120, Category: "Coiffure", IsActive: true},
	{Name: "Maquillage", Description: "Maquillage professionnel pour toutes occasions", PriceMin: 5, PriceMax: intPtr(8), DurationMin: 45, Category: "Maquillage", IsActive: true},
	{Name: "Pedicure", Description: "Soin complet des pieds et ongles", PriceMin: 5, PriceMax: intPtr(10), DurationMin: 60, Category: "Soins", IsActive: true},
	{Name: "Coiffure dame simple", Description: "Coiffure quotidienne pour dames", PriceMin: 5, DurationMin: 30, Category: "Coiffure", IsActive: true},
	{Name: "Locks", Description: "Entretien et creation de locks", PriceMin: 5, DurationMin: 60, Category: "Coiffure", IsActive: true},
	{Name: "Lave tete", Description: "Shampooing et soin des cheveux", PriceMin: 3, DurationMin: 20, Category: "Soins", IsActive: true},
	{Name: "Twist", Description: "Coiffure twist tendance", PriceMin: 10, DurationMin: 60, Category: "Coiffure", IsActive: true},
}

var teamSeed = []models.TeamMember{
	{Name: "Marie Kalumba", Specialty: "Coiffure dame, Tresses", Bio: "Specialiste des tresses africaines et coiffures de ceremonie", Phone: "+243 976527237", IsActive: true},
	{Name: "Jean-Pierre Mwamba", Specialty: "Coiffure homme, Locks", Bio: "Expert en coupes modernes et entretien de locks", Phone: "+243 994155412", IsActive: true},
	{Name: "Grace Amani", Specialty: "Maquillage, Soins visage", Bio: "Maquilleuse professionnelle et estheticienne", Phone: "+243 854123658", IsActive: true},
	{Name: "Patrick Bukasa", Specialty: "Draid Locks, Twist", Bio: "Artiste capillaire specialise en styles tendance", Phone: "+243 890357766", IsActive: true},
}

var eventsSeed = []models.Event{
	{Title: "Promotion Week-end", Description: "-20% sur toutes les tresses ce week-end", DiscountPercent: intPtr(20), StartDate: "2026-01-18", EndDate: strPtr("2026-01-19"), IsActive: true},
	{Title: "Special Fetes", Description: "Offre speciale maquillage + coiffure pour vos ceremonies", DiscountPercent: intPtr(15), StartDate: "2026-01-20", EndDate: strPtr("2026-01-31"), IsActive: true},
	{Title: "Nouveaux clients", Description: "Votre premiere visite a -10%", DiscountPercent: intPtr(10), StartDate: "2026-01-01", EndDate: strPtr("2026-12-31"), IsActive: true},
}

// seedTable inserts the rows only when the table is still empty, so the
// command can run on every deploy.
func seedTable[T any](db *gorm.DB, name string, rows []T) {
	var count int64
	if err := db.Model(new(T)).Count(&count).Error; err != nil {
		log.Fatalf("failed to count %s: %v", name, err)
	}
	if count > 0 {
		log.Printf("%s already seeded, skipping", name)
		return
	}

	if err := db.Create(&rows).Error; err != nil {
		log.Fatalf("failed to seed %s: %v", name, err)
	}
	log.Printf("seeded %d %s", len(rows), name)
}

func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	seedTable(db, "services", servicesSeed)
	seedTable(db, "team members", teamSeed)
	seedTable(db, "events", eventsSeed)

	log.Println("seeding complete")
}
