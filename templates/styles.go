package templates

// styleSpec carries the presentation constants of one confirmation style.
// Only looks and header copy vary between styles.
type styleSpec struct {
	HeaderBackground string
	HeaderTextColor  string
	AccentColor      string
	FontFamily       string
	HeaderTitle      string
	HeaderTagline    string
}

var styleTable = map[Style]styleSpec{
	StyleClassic: {
		HeaderBackground: "#00569e",
		HeaderTextColor:  "#ffffff",
		AccentColor:      "#3871c1",
		FontFamily:       "Arial, sans-serif",
		HeaderTitle:      DefaultSubject,
		HeaderTagline:    "Sua viagem está confirmada!",
	},
	StyleMinimal: {
		HeaderBackground: "#ffffff",
		HeaderTextColor:  "#111827",
		AccentColor:      "#111827",
		FontFamily:       "'Helvetica Neue', Helvetica, Arial, sans-serif",
		HeaderTitle:      "Reserva Confirmada",
		HeaderTagline:    "Todos os detalhes da sua viagem abaixo.",
	},
	StyleUrgent: {
		HeaderBackground: "linear-gradient(135deg, #b91c1c 0%, #f97316 100%)",
		HeaderTextColor:  "#ffffff",
		AccentColor:      "#b91c1c",
		FontFamily:       "Arial, sans-serif",
		HeaderTitle:      "Atenção: Confirmação da sua Viagem",
		HeaderTagline:    "Confira os dados do seu voo com atenção.",
	},
}
