package templates

import (
	"fmt"
	"strings"

	"flightcast-service/internal/domain/entity"
)

func confirmationSectionTitle(l leg) string {
	switch l.Kind {
	case legOutbound:
		return "Detalhes do Seu Voo de Ida:"
	case legInbound:
		return "Detalhes do Seu Voo de Volta:"
	default:
		return fmt.Sprintf("Detalhes do Trecho %d:", l.Number)
	}
}

func confirmationSectionHTML(l leg) string {
	segment := l.Segment

	connectionHTML := ""
	if segment.Connection != nil {
		connectionHTML = fmt.Sprintf(`
                <p><strong>Conexão:</strong> Sim</p>
                <p><strong>Tempo estimado de conexão:</strong> %s</p>
                <p><strong>Número do Voo de conexão:</strong> %s</p>`,
			segment.Connection.Duration, segment.Connection.FlightNumber)
	}

	return fmt.Sprintf(`
            <div class="flight-details">
                <h2>%s</h2>
                <p><strong>Número do Voo:</strong> %s</p>
                <p><strong>Data e hora de Partida:</strong> %s %s</p>
                <p><strong>Local de Partida:</strong> %s</p>
                <p><strong>Destino:</strong> %s</p>
                <p><strong>Cia Aérea:</strong> %s</p>
                <p><strong>Localizador da Reserva:</strong> %s</p>%s
            </div>`,
		confirmationSectionTitle(l),
		segment.FlightNumber,
		segment.Date, segment.Time,
		segment.Origin,
		segment.Destination,
		segment.Airline,
		segment.PNR,
		connectionHTML)
}

func renderConfirmationHTML(data *entity.ExtractedFlightData, spec styleSpec, agent entity.AgentProfile) string {
	var sections strings.Builder
	for _, l := range legsOf(data) {
		sections.WriteString(confirmationSectionHTML(l))
		sections.WriteString("\n")
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="pt-br">

<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body {
            font-family: %s;
            margin: 0;
            padding: 0;
            background-color: #f4f4f4;
        }

        .email-container {
            width: 100%%;
            max-width: 600px;
            margin: 0 auto;
            background-color: #ffffff;
            border-radius: 8px;
            overflow: hidden;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
        }

        .header {
            background: %s;
            color: %s;
            padding: 20px;
            text-align: center;
            border-top-left-radius: 8px;
            border-top-right-radius: 8px;
        }

        .header h1 {
            font-size: 20px;
            margin: 0;
        }

        .header p {
            margin: 8px 0 0;
            font-size: 14px;
        }

        .content {
            padding: 20px;
            color: #333333;
        }

        .content h2 {
            color: %s;
            font-size: 20px;
        }

        .content p {
            line-height: 1.6;
        }

        .flight-details {
            background-color: #f9f9f9;
            padding: 10px;
            border: 1px solid #ddd;
            margin: 20px 0;
        }

        .footer {
            background-color: #f4f4f4;
            color: #777777;
            text-align: center;
            padding: 10px 20px;
            font-size: 12px;
        }

        .footer a {
            color: %s;
            text-decoration: none;
        }
    </style>
</head>

<body>
    <div class="email-container">
        <div class="header">
            <h1>%s</h1>
            <p>%s</p>
        </div>
        <div class="content">
            <p>%s %s,</p>
            <p>Esperamos que este email %s encontre bem!</p>
            <p>Estamos entusiasmados em confirmar que sua jornada conosco, no Clube do Voo Viagens, está prestes a começar. Agradecemos por escolher viajar conosco e prometemos fazer de sua experiência algo inesquecível.</p>
            %s
            <p>Este localizador é a sua chave para o check-in, que poderá ser realizado online a partir de 48 horas antes da partida do seu voo. Nossa equipe entrará em contato para confirmar o check-in e enviar o cartão de embarque, caso lhe seja conveniente.</p>

            <h2>Preparando-se para o Voo:</h2>
            <p>Recomendamos chegar ao aeroporto com, pelo menos, 2 horas de antecedência. Lembre-se de verificar os requisitos de bagagem e segurança para garantir uma viagem tranquila.</p>

            <h2>Assistência Adicional:</h2>
            <p>Para qualquer necessidade especial, alterações em sua reserva, ou dúvidas, nossa equipe de atendimento ao cliente está pronta para ajudá-la. Entre em contato conosco através do %s ou <a href="mailto:%s">%s</a>.</p>

            <p>Estamos verdadeiramente animados por fazer parte da sua próxima aventura e estamos empenhados em oferecer-lhe uma experiência agradável e confortável. Esperamos que esta viagem seja apenas o início de muitas outras maravilhosas jornadas conosco.</p>
            <p>Um mundo de novas experiências espera por você. Boa viagem!</p>

            <div class="footer">
                <p>Atenciosamente,</p>
                <p>%s,</p>
                <p>%s Clube do Voo Viagens,</p>
                <p><a href="https://www.clubedovooviagens.com.br">Clube do Voo Viagens</a></p>
                <p>www.clubedovooviagens.com.br</p>
                <p><em>Este é um email automático, por favor não responda diretamente a este email. Para entrar em contato conosco, utilize os canais de atendimento mencionados acima.</em></p>
            </div>
        </div>
    </div>
</body>

</html>`,
		spec.HeaderTitle,
		spec.FontFamily,
		spec.HeaderBackground,
		spec.HeaderTextColor,
		spec.AccentColor,
		spec.AccentColor,
		spec.HeaderTitle,
		spec.HeaderTagline,
		data.GreetingTitle, data.PassengerNames,
		data.Pronoun,
		sections.String(),
		agent.Phone, agent.Email, agent.Email,
		agent.Name,
		agent.Role)
}
