package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect abre la conexión y migra las tablas del servicio.
// Cada servicio pasa únicamente sus propios modelos: no hay tablas compartidas.
func Connect(dsn string, models ...interface{}) {
	var err error
	DB, err = gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Traduce los errores del driver (23505, etc.) a los errores de gorm,
		// para poder distinguir una violación de índice único de un fallo genérico.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error de conexión a la base de datos: %v", err)
	}

	if len(models) > 0 {
		if err := DB.AutoMigrate(models...); err != nil {
			log.Fatalf("Error de migración: %v", err)
		}
	}
}
