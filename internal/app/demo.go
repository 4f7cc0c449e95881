package app

import "fmt"

// RunDemo replays the fixed demonstration script: one section per component
// group, each preceded by a blank line and a header, using the configured
// demo inputs.
func (a *App) RunDemo() {
	a.section("Pago con Adapter")
	a.Payments.Pay(a.Config.Demo.Amount)

	a.section("Facturación con Facade")
	a.Billing.Process(a.Config.Demo.User, a.Config.Demo.Amount)

	a.section("Envío de mensajes con Decorators")
	a.Messenger(true, true).Send(a.Config.Demo.Message)

	a.section("Interfaz gráfica con Composite")
	a.Form().Render(a.Out, 0)

	a.section("Acceso a base de datos con Proxy")
	guest := a.Store(a.Config.Demo.GuestRole)
	admin := a.Store(a.Config.Demo.AdminRole)
	guest.Read()
	guest.Write()
	admin.Write()
}

func (a *App) section(title string) {
	a.Log.Debug().Str("section", title).Msg("running demo section")
	fmt.Fprintf(a.Out, "\n--- %s ---\n", title)
}
