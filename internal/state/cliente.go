package state

import (
	"sync"

	"github.com/jhoicas/crm-clientes/internal/domain/entity"
	"github.com/jhoicas/crm-clientes/pkg/logger"
)

// ClienteState registro del store de clientes.
// Error y SuccessMessage son limpiables a la vez (ClearMessages) pero no
// mutuamente excluyentes: por convención los casos de uso solo dejan uno.
type ClienteState struct {
	Clientes            []entity.ClienteResumen
	ClienteSeleccionado *entity.Cliente
	Intereses           []entity.Interes
	Loading             bool
	Error               *string
	SuccessMessage      *string
}

// ClienteTipo enumeración cerrada de acciones del store de clientes.
type ClienteTipo int

const (
	SetLoading ClienteTipo = iota
	SetClientes
	SetClienteSeleccionado
	SetIntereses
	SetErrorCliente
	SetSuccess
	ClearMessages
	ClearClienteSeleccionado
)

// ClienteAccion acción etiquetada con su payload.
type ClienteAccion struct {
	Tipo      ClienteTipo
	Clientes  []entity.ClienteResumen // SetClientes
	Cliente   *entity.Cliente         // SetClienteSeleccionado (nil permitido)
	Intereses []entity.Interes        // SetIntereses
	Mensaje   string                  // SetErrorCliente, SetSuccess
}

// reducirCliente es el mapeo puro y total (estado, acción) -> estado.
// SetErrorCliente y SetSuccess apagan Loading: una operación terminada,
// fallida o no, siempre cierra el estado de carga.
func reducirCliente(st ClienteState, a ClienteAccion) ClienteState {
	switch a.Tipo {
	case SetLoading:
		st.Loading = true
		st.Error = nil
		st.SuccessMessage = nil
	case SetClientes:
		st.Clientes = a.Clientes
		st.Loading = false
		st.Error = nil
	case SetClienteSeleccionado:
		st.ClienteSeleccionado = a.Cliente
		st.Loading = false
	case SetIntereses:
		st.Intereses = a.Intereses
		st.Loading = false
	case SetErrorCliente:
		m := a.Mensaje
		st.Error = &m
		st.Loading = false
	case SetSuccess:
		m := a.Mensaje
		st.SuccessMessage = &m
		st.Loading = false
	case ClearMessages:
		st.Error = nil
		st.SuccessMessage = nil
	case ClearClienteSeleccionado:
		st.ClienteSeleccionado = nil
	}
	return st
}

// ClienteStore store de clientes: listado, selección, intereses y flags.
type ClienteStore struct {
	mu  sync.Mutex
	st  ClienteState
	log *logger.Logger
}

// NewClienteStore construye el store con estado inicial vacío.
func NewClienteStore(log *logger.Logger) *ClienteStore {
	return &ClienteStore{log: log}
}

// Dispatch aplica una acción al estado bajo el lock del store.
func (s *ClienteStore) Dispatch(a ClienteAccion) {
	s.mu.Lock()
	s.st = reducirCliente(s.st, a)
	s.mu.Unlock()

	switch a.Tipo {
	case SetClientes:
		s.log.Debug().Int("count", len(a.Clientes)).Msg("clientes cargados")
	case SetClienteSeleccionado:
		if a.Cliente != nil {
			s.log.Debug().Str("clienteId", a.Cliente.ID).Msg("cliente seleccionado")
		}
	case SetIntereses:
		s.log.Debug().Int("count", len(a.Intereses)).Msg("intereses cargados")
	case SetErrorCliente:
		s.log.Warn().Str("error", a.Mensaje).Msg("error en clientes")
	case SetSuccess:
		s.log.Info().Str("message", a.Mensaje).Msg("operación exitosa")
	}
}

// State devuelve una copia del estado actual.
func (s *ClienteStore) State() ClienteState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}
