package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"claimsportal/internal/database"
	"claimsportal/internal/domain"
	"claimsportal/internal/funnel"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "portal.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Employee{},
		&domain.Lead{},
		&domain.Kredit{},
		&domain.EnergyDocument{},
		&domain.OperatingCostDocument{},
		&domain.CasinoDocument{},
		&domain.CampaignLead{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (child tables first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM energie_daten")
	db.Exec("DELETE FROM betriebskosten_daten")
	db.Exec("DELETE FROM casino_verluste_daten")
	db.Exec("DELETE FROM kreditgebuehren_data")
	db.Exec("DELETE FROM lead_data")
	db.Exec("DELETE FROM campaign_kreditbearbeitungs_leads")
	db.Exec("DELETE FROM employees")

	// ================== EMPLOYEES ==================
	log.Println("Creating employees...")

	employees := make([]domain.Employee, 0, 3)
	for i, email := range []string{"berater1@portal.at", "berater2@portal.at", "admin@portal.at"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("berater123"), bcrypt.DefaultCost)
		employee := domain.Employee{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: string(hash),
			Name:         fmt.Sprintf("Berater %d", i+1),
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		db.Create(&employee)
		employees = append(employees, employee)
		log.Printf("Employee created: %s / berater123", email)
	}

	// ================== LEADS ==================
	log.Println("Creating sample leads...")

	names := [][2]string{{"Max", "Mustermann"}, {"Anna", "Huber"}, {"Josef", "Gruber"}}
	for i, n := range names {
		employee := employees[i%len(employees)]
		lead := domain.Lead{
			ID:                uuid.NewString(),
			CreatedAt:         time.Now().Add(-time.Duration(i) * 24 * time.Hour),
			LeadType:          string(domain.LeadTypeNeu),
			FirstName:         n[0],
			LastName:          n[1],
			Email:             fmt.Sprintf("%s.%s@example.at", n[0], n[1]),
			Phone:             fmt.Sprintf("+43 660 123 45%02d", i+10),
			Nationality:       "Österreich",
			BirthDate:         "1985-04-12",
			EmploymentStatus:  funnel.EmploymentOptions[i%len(funnel.EmploymentOptions)],
			ConsentPrivacy:    true,
			ConsentConditions: true,
			EmployeeID:        employee.ID,
		}
		db.Create(&lead)

		banks, _ := json.Marshal(funnel.Banks[:2+i%3])
		kredit := domain.Kredit{
			ID:              uuid.NewString(),
			LeadID:          lead.ID,
			CustomerType:    string(domain.CustomerPrivat),
			SelectedBanks:   string(banks),
			LoanAmountRange: funnel.LoanAmountRanges[i%len(funnel.LoanAmountRanges)],
			BorrowerCount:   string(domain.BorrowerSingle),
			CreatedAt:       lead.CreatedAt,
		}
		db.Create(&kredit)
	}

	// ================== CAMPAIGN LEAD ==================
	log.Println("Creating campaign lead...")

	banks, _ := json.Marshal([]string{funnel.Banks[0]})
	campaignLead := domain.CampaignLead{
		ID:              uuid.NewString(),
		AdminID:         employees[len(employees)-1].ID,
		Persona:         "private",
		SelectedBanks:   string(banks),
		LoanAmountRange: funnel.LoanAmountRanges[0],
		BorrowerCount:   "single",
		ContactName:     "Maria Bauer",
		ContactPhone:    "+43 664 987 6543",
		ContactEmail:    "maria.bauer@example.at",
		ConsentPrivacy:  true,
		ConsentTerms:    true,
		Metadata:        `{"source":"seed"}`,
		CreatedAt:       time.Now(),
	}
	db.Create(&campaignLead)

	log.Println("Seed complete.")
}
