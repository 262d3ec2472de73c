package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flightcast-service/internal/domain/repository"
)

func TestFromHeader(t *testing.T) {
	relay := &ResendRelay{
		fromName: "Clube do Voo Viagens",
		fromAddr: "reservas@clubedovooviagens.com.br",
	}

	// No per-message identity: relay defaults.
	assert.Equal(t, "Clube do Voo Viagens <reservas@clubedovooviagens.com.br>",
		relay.fromHeader(&repository.OutboundMail{}))

	// Saved identity overrides field by field.
	assert.Equal(t, "Agência Sol <reservas@agenciasol.com.br>",
		relay.fromHeader(&repository.OutboundMail{
			FromName:    "Agência Sol",
			FromAddress: "reservas@agenciasol.com.br",
		}))
	assert.Equal(t, "Agência Sol <reservas@clubedovooviagens.com.br>",
		relay.fromHeader(&repository.OutboundMail{FromName: "Agência Sol"}))
}
