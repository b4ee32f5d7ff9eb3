// Inserts the demo tour through the aggregator so a fresh install has
// content to render. Run with: go run ./cmd/seed serve
package main

import (
	"fmt"
	"log"

	internalApp "github.com/FrancoCalegari/demobodega/internal/app"
	domain "github.com/FrancoCalegari/demobodega/internal/core"

	_ "github.com/FrancoCalegari/demobodega/migrations"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

var demoTour = domain.TourInput{
	Title:         "Experiencia Completa Maipú",
	Subtitle:      "Tempus Alba + Esencia 1870",
	Image:         "assets/img/winery-2.jpg",
	Price:         "160.000",
	PriceCurrency: "ARS",
	MinGuests:     1,
	Description: "Disfruta de un recorrido exclusivo por dos de las bodegas más emblemáticas de Maipú. " +
		"Comenzaremos con una inmersión en la enología de Tempus Alba y culminaremos con una experiencia " +
		"gastronómica inolvidable en los jardines de Esencia 1870.",
	Features: []string{
		"Transporte Privado (Ida y Vuelta)",
		"Visita y Degustación en Bodega Tempus Alba",
		"Visita, Degustación y Almuerzo de 4 Pasos en Bodega Esencia 1870",
	},
	Wineries: []domain.Winery{
		{
			Name:      "Bodega Tempus Alba",
			Image:     "assets/img/winery-1.jpg",
			Location:  "https://maps.app.goo.gl/ScDtwq5gGPW79yAC8",
			Instagram: "https://www.instagram.com/tempusalba/",
		},
		{
			Name:      "Bodega Esencia 1870",
			Image:     "assets/img/winery-2.jpg",
			Location:  "https://maps.app.goo.gl/LxXovkTsjzkbWiuy7",
			Instagram: "https://www.instagram.com/bodegaesencia1870/",
		},
	},
	MenuSteps: []string{
		"<strong>Primer Paso:</strong> Tapeo regional acompañado de un pan de focaccia. <br><em>Maridaje: Moscatuel blanco seco</em>",
		"<strong>Segundo Paso:</strong> 2 Empanadas de carne o 2 Empanadas de vegetales. <br><em>Maridaje: Malbec tinto dulce</em>",
		"<strong>Tercer Paso:</strong> Tira de asado con guarnición de papas rústicas o Lasagna vegetariana. <br><em>Maridaje: Blend de tintos 'Gran pueblo argentino'</em>",
		"<strong>Cuarto Paso:</strong> Flan con dulce de leche. <br><em>Maridaje: Torrontés blanco dulce</em>",
	},
	MenuImage: "assets/img/menu-criollo.png",
}

func main() {
	pb := pocketbase.New()

	pb.OnServe().BindFunc(func(se *core.ServeEvent) error {
		container := internalApp.NewContainer(pb)

		// Skip when the demo tour is already there
		existing, err := container.Tours.AssembleAll()
		if err != nil {
			return err
		}
		for _, view := range existing {
			if view.Title == demoTour.Title {
				fmt.Printf("Tour already exists: %s\n", view.ID)
				return nil
			}
		}

		id, err := container.Tours.Decompose("", demoTour)
		if err != nil {
			return err
		}
		fmt.Printf("Created tour: %s\n", id)
		return nil
	})

	if err := pb.Start(); err != nil {
		log.Fatal(err)
	}
}
