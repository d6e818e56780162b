package main

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"serviapp/internal/app/ds"
)

func main() {
	dsn := "host=localhost user=postgres password=password dbname=serviapp_db port=5432 sslmode=disable TimeZone=America/Argentina/Buenos_Aires"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var services []ds.Service
	err = db.Find(&services).Error
	if err != nil {
		log.Fatal("Failed to get services:", err)
	}

	fmt.Println("Services in database:")
	for _, service := range services {
		imageURL := "NULL"
		if service.ImageURL != nil {
			imageURL = *service.ImageURL
		}
		fmt.Printf("ID: %d, Titulo: %s, Precio: %.2f, ImageURL: %s\n", service.ID, service.Titulo, service.Precio, imageURL)
	}
}
