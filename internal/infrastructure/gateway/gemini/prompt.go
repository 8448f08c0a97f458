package gemini

import (
	"fmt"
	"strings"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// BuildPrompt renders the event-planner instruction for r. The wording is
// Brazilian Portuguese and names the venue twice.
func BuildPrompt(venue string, r domain.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Aja como um planejador de eventos criativo e experiente para o %q, ", venue)
	b.WriteString("um local conhecido por seu ambiente sofisticado e aconchegante. ")
	b.WriteString("Um cliente está organizando uma celebração e precisa de uma sugestão detalhada.\n")
	b.WriteString("Detalhes do evento:\n")
	fmt.Fprintf(&b, "- Ocasião: '%s'\n", r.Occasion)
	fmt.Fprintf(&b, "- Data: %s\n", r.Date)
	fmt.Fprintf(&b, "- Número de Convidados: %d\n", r.GuestCount)
	fmt.Fprintf(&b, "- Estilo do Evento: '%s'\n\n", r.EventType)
	fmt.Fprintf(&b, "Com base nesses detalhes, crie um conceito completo para o evento no %s. ", venue)
	b.WriteString("Descreva um tema criativo, sugestões de cardápio (entrada, prato principal, sobremesa e bebidas), ")
	b.WriteString("ideias de decoração que combinem com o ambiente do bar, ")
	b.WriteString("e uma atividade ou entretenimento especial para os convidados. ")
	b.WriteString("A sugestão deve ser inspiradora, bem estruturada e fácil de entender. ")
	b.WriteString("Responda em português do Brasil.")
	return b.String()
}
