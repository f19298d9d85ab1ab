package manager

// Labels shown by the payment-type screen. Kept verbatim; the admin front end
// and its tests look them up by text.
const (
	LabelAddTrigger        = "Agregar nuevo tipo de pago"
	LabelModalTitle        = "Agregar Tipo de Pago"
	LabelInputPlaceholder  = "Nombre del tipo de pago"
	LabelSubmit            = "Agregar"
	LabelSearchPlaceholder = "Buscar tipo de pago por descripción"
)

// Notification texts.
const (
	MsgEmptyField    = "Debe ingresar una descripción"
	MsgDuplicate     = "El nombre del tipo de pago ya existe. Por favor, elige un nombre diferente."
	MsgCreated       = "Tipo de pago agregado con éxito"
	MsgCreateFailed  = "Ocurrió un error al agregar el tipo de pago"
	MsgLoadFailed    = "Ocurrió un error al cargar los tipos de pago"
	MsgModalClosed   = "Abra el formulario de " + LabelModalTitle + " antes de enviar"
	MsgSubmitPending = "Ya se está agregando un tipo de pago"
)
