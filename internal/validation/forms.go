package validation

import "strings"

// FormErrors asocia nombre de campo con un mensaje de error opcional.
// La ausencia de clave (o un valor nil) significa campo válido.
type FormErrors map[string]*string

func msg(s string) *string { return &s }

// HasErrors indica si al menos un campo tiene mensaje definido.
// Es el único predicado que decide si un formulario puede enviarse.
func HasErrors(errors FormErrors) bool {
	for _, v := range errors {
		if v != nil {
			return true
		}
	}
	return false
}

// DatosClienteForm datos del formulario de mantenimiento de clientes.
type DatosClienteForm struct {
	Nombre          string
	Apellidos       string
	Identificacion  string
	Celular         string
	OtroTelefono    string
	Direccion       string
	FNacimiento     string
	FAfiliacion     string
	Sexo            string
	ResennaPersonal string
	InteresFK       string
}

// ValidarLoginForm exige usuario y contraseña no blancos. Sin chequeo de formato.
func ValidarLoginForm(username, password string) FormErrors {
	errors := FormErrors{}

	if strings.TrimSpace(username) == "" {
		errors["username"] = msg(MsgRequerido)
	}

	if strings.TrimSpace(password) == "" {
		errors["password"] = msg(MsgRequerido)
	}

	return errors
}

// ValidarRegisterForm valida el formulario de registro. La presencia siempre
// precede al chequeo de formato: un campo en blanco reporta MsgRequerido y el
// mensaje específico solo se evalúa con el campo no vacío.
func ValidarRegisterForm(username, email, password, confirmPassword string) FormErrors {
	errors := FormErrors{}

	if strings.TrimSpace(username) == "" {
		errors["username"] = msg(MsgRequerido)
	}

	if strings.TrimSpace(email) == "" {
		errors["email"] = msg(MsgRequerido)
	} else if !ValidarEmail(email) {
		errors["email"] = msg(MsgEmailInvalido)
	}

	if password == "" {
		errors["password"] = msg(MsgRequerido)
	} else if !ValidarPassword(password) {
		errors["password"] = msg(MsgPasswordDebil)
	}

	if confirmPassword == "" {
		errors["confirmPassword"] = msg(MsgRequerido)
	} else if !ValidarCoincidencia(password, confirmPassword) {
		errors["confirmPassword"] = msg(MsgPasswordsNoCoinciden)
	}

	return errors
}

// ValidarClienteForm valida el formulario de cliente campo por campo, con la
// misma precedencia requerido-antes-que-formato. otroTelefono es opcional pero
// si viene debe cumplir la regla de teléfono.
func ValidarClienteForm(datos DatosClienteForm) FormErrors {
	errors := FormErrors{}

	if strings.TrimSpace(datos.Nombre) == "" {
		errors["nombre"] = msg(MsgRequerido)
	} else if !ValidarNombre(datos.Nombre) {
		errors["nombre"] = msg(MsgLongitudMaxima(NombreMax))
	}

	if strings.TrimSpace(datos.Apellidos) == "" {
		errors["apellidos"] = msg(MsgRequerido)
	} else if !ValidarApellidos(datos.Apellidos) {
		errors["apellidos"] = msg(MsgLongitudMaxima(ApellidosMax))
	}

	if strings.TrimSpace(datos.Identificacion) == "" {
		errors["identificacion"] = msg(MsgRequerido)
	} else if !ValidarIdentificacion(datos.Identificacion) {
		errors["identificacion"] = msg(MsgLongitudMaxima(IdentificacionMax))
	}

	if strings.TrimSpace(datos.Celular) == "" {
		errors["celular"] = msg(MsgRequerido)
	} else if !ValidarTelefono(datos.Celular) {
		errors["celular"] = msg(MsgLongitudMaxima(TelefonoMax))
	}

	if datos.OtroTelefono != "" && !ValidarTelefono(datos.OtroTelefono) {
		errors["otroTelefono"] = msg(MsgLongitudMaxima(TelefonoMax))
	}

	if strings.TrimSpace(datos.Direccion) == "" {
		errors["direccion"] = msg(MsgRequerido)
	} else if !ValidarDireccion(datos.Direccion) {
		errors["direccion"] = msg(MsgLongitudMaxima(DireccionMax))
	}

	if datos.FNacimiento == "" {
		errors["fNacimiento"] = msg(MsgRequerido)
	} else if !ValidarFecha(datos.FNacimiento) {
		errors["fNacimiento"] = msg(MsgFechaInvalida)
	}

	if datos.FAfiliacion == "" {
		errors["fAfiliacion"] = msg(MsgRequerido)
	} else if !ValidarFecha(datos.FAfiliacion) {
		errors["fAfiliacion"] = msg(MsgFechaInvalida)
	}

	if datos.Sexo == "" {
		errors["sexo"] = msg(MsgRequerido)
	} else if !ValidarSexo(datos.Sexo) {
		errors["sexo"] = msg(MsgFormatoInvalido)
	}

	if strings.TrimSpace(datos.ResennaPersonal) == "" {
		errors["resennaPersonal"] = msg(MsgRequerido)
	} else if !ValidarResena(datos.ResennaPersonal) {
		errors["resennaPersonal"] = msg(MsgLongitudMaxima(ResenaMax))
	}

	if datos.InteresFK == "" {
		errors["interesFK"] = msg(MsgRequerido)
	}

	return errors
}
