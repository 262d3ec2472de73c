package templates

import (
	"fmt"
	"strings"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/pkg/utils"
)

func reminderBoardingTime(segment entity.FlightSegment) string {
	if segment.BoardingTime == "" {
		return NoBoardingTime
	}
	return segment.BoardingTime
}

func reminderSeat(segment entity.FlightSegment) string {
	if segment.Seat == "" {
		return NoSeat
	}
	return segment.Seat
}

func reminderSectionHTML(l leg) string {
	segment := l.Segment

	connectionHTML := ""
	if segment.Connection != nil {
		connectionHTML = fmt.Sprintf(`
                <p><strong>Conexão:</strong> %s (Voo %s)</p>`,
			segment.Connection.Duration, segment.Connection.FlightNumber)
	}

	return fmt.Sprintf(`
            <div class="flight-details">
                <h2>Trecho %d: %s ➔ %s</h2>
                <p><strong>Voo:</strong> %s %s</p>
                <p><strong>Data:</strong> %s</p>
                <p><strong>Horário de Partida:</strong> %s</p>
                <p><strong>Horário de Embarque:</strong> %s</p>
                <p><strong>Assento:</strong> %s</p>
                <p><strong>Localizador da Reserva:</strong> %s</p>%s
            </div>`,
		l.Number, segment.Origin, segment.Destination,
		segment.Airline, segment.FlightNumber,
		utils.LongDatePT(segment.Date),
		segment.Time,
		reminderBoardingTime(segment),
		reminderSeat(segment),
		segment.PNR,
		connectionHTML)
}

func renderReminderHTML(data *entity.ExtractedFlightData, agent entity.AgentProfile) string {
	var sections strings.Builder
	for _, l := range legsOf(data) {
		sections.WriteString(reminderSectionHTML(l))
		sections.WriteString("\n")
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="pt-br">

<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Lembrete de Embarque - Clube do Voo Viagens</title>
    <style>
        body {
            font-family: Arial, sans-serif;
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
            background-color: #b45309;
            color: #ffffff;
            padding: 20px;
            text-align: center;
            border-top-left-radius: 8px;
            border-top-right-radius: 8px;
        }

        .header h1 {
            font-size: 20px;
            margin: 0;
        }

        .content {
            padding: 20px;
            color: #333333;
        }

        .content h2 {
            color: #b45309;
            font-size: 18px;
        }

        .content p {
            line-height: 1.6;
        }

        .flight-details {
            background-color: #fffbeb;
            padding: 10px;
            border: 1px solid #fcd34d;
            margin: 20px 0;
        }

        .advisory {
            background-color: #f9f9f9;
            border-left: 4px solid #b45309;
            padding: 10px 15px;
            margin: 20px 0;
        }

        .footer {
            background-color: #f4f4f4;
            color: #777777;
            text-align: center;
            padding: 10px 20px;
            font-size: 12px;
        }
    </style>
</head>

<body>
    <div class="email-container">
        <div class="header">
            <h1>Lembrete de Embarque - Clube do Voo Viagens</h1>
        </div>
        <div class="content">
            <p>%s %s,</p>
            <p>Esperamos que este email %s encontre bem!</p>
            <p>Seu embarque está chegando! Confira abaixo os detalhes de cada trecho da sua viagem.</p>
            %s
            <div class="advisory">
                <p>Tenha em mãos um documento de identificação com foto.</p>
                <p>Chegue ao aeroporto com pelo menos 2 horas de antecedência do embarque.</p>
            </div>

            <div class="footer">
                <p>Atenciosamente,</p>
                <p>%s,</p>
                <p>%s Clube do Voo Viagens,</p>
                <p>%s | %s</p>
            </div>
        </div>
    </div>
</body>

</html>`,
		data.GreetingTitle, data.PassengerNames,
		data.Pronoun,
		sections.String(),
		agent.Name,
		agent.Role,
		agent.Phone, agent.Email)
}
