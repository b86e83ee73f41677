package adminui

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/RobinJosephDev/AdminUILinux/modules/core"
	"github.com/RobinJosephDev/AdminUILinux/modules/directory"
	"github.com/RobinJosephDev/AdminUILinux/modules/freight"
	"github.com/RobinJosephDev/AdminUILinux/pkg/configuration"
	"github.com/RobinJosephDev/AdminUILinux/pkg/crud"
	"github.com/RobinJosephDev/AdminUILinux/pkg/eventbus"
	"github.com/RobinJosephDev/AdminUILinux/pkg/httpapi"
	"github.com/RobinJosephDev/AdminUILinux/pkg/session"
)

// App is the composition root: it wires the configuration, session, event
// bus and API clients into one list controller per resource. Embedding
// front ends construct one App at startup and hang their tables off it.
type App struct {
	Config   *configuration.Configuration
	Bus      eventbus.EventBus
	Session  *session.Session
	Client   *httpapi.Client
	Uploader *httpapi.Uploader
	Mailer   *httpapi.Mailer

	Users      *crud.ListController[core.User]
	Companies  *crud.ListController[directory.Company]
	Carriers   *crud.ListController[directory.Carrier]
	Vendors    *crud.ListController[directory.Vendor]
	Customers  *crud.ListController[directory.Customer]
	Orders     *crud.ListController[freight.Order]
	Dispatches *crud.ListController[freight.Dispatch]
}

// New builds the application graph. A nil store keeps the token in memory.
func New(conf *configuration.Configuration, store session.TokenStore) (*App, error) {
	log := conf.Logger()
	bus := eventbus.NewEventPublisher(log)
	sess := session.New(store, bus)

	client, err := httpapi.NewClient(conf.API.BaseURL, conf.API.Timeout, sess, log)
	if err != nil {
		return nil, err
	}

	locale := language.Make(conf.Locale)
	a := &App{
		Config:   conf,
		Bus:      bus,
		Session:  sess,
		Client:   client,
		Uploader: httpapi.NewUploader(client, conf.Uploads.Path, conf.Uploads.MaxSize),
		Mailer:   httpapi.NewMailer(client),
	}
	a.Users = core.NewUserController(client, tableOptions[core.User](conf, log, locale)...)
	a.Companies = directory.NewCompanyController(client, tableOptions[directory.Company](conf, log, locale)...)
	a.Carriers = directory.NewCarrierController(client, tableOptions[directory.Carrier](conf, log, locale)...)
	a.Vendors = directory.NewVendorController(client, tableOptions[directory.Vendor](conf, log, locale)...)
	a.Customers = directory.NewCustomerController(client, tableOptions[directory.Customer](conf, log, locale)...)
	a.Orders = freight.NewOrderController(client, tableOptions[freight.Order](conf, log, locale)...)
	a.Dispatches = freight.NewDispatchController(client, tableOptions[freight.Dispatch](conf, log, locale)...)
	return a, nil
}

// NewBinder seeds a form binder backed by the app's upload client.
func NewBinder[T any](a *App, schema *crud.Schema[T], seed T) *crud.FormBinder[T] {
	return crud.NewFormBinder(schema, seed,
		crud.WithUploader[T](a.Uploader),
		crud.WithBinderLogger[T](a.Config.Logger()),
	)
}

func tableOptions[T any](conf *configuration.Configuration, log *logrus.Logger, locale language.Tag) []crud.ListOption[T] {
	return []crud.ListOption[T]{
		crud.WithRowsPerPage[T](conf.Table.RowsPerPage),
		crud.WithLocale[T](locale),
		crud.WithListLogger[T](log),
	}
}
