package site

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/hatua/futuretech/lib/mycontext"
	"github.com/hatua/futuretech/lib/myerrors"
	"github.com/hatua/futuretech/lib/myhttp"
	"github.com/hatua/futuretech/lib/mylog"
	"github.com/hatua/futuretech/lib/myuuid"
)

type webService struct {
	logger mylog.Logger
	uuider myuuid.UUIDer
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewWebService(uuider myuuid.UUIDer) *webService {
	return &webService{
		logger: mylog.New("site"),
		uuider: uuider,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/", s.page(indexPageTemplate, "Hatua Innovation Studio")).Methods("GET")
	router.HandleFunc("/marketing", s.page(marketingPageTemplate, "Marketing")).Methods("GET")
	router.HandleFunc("/tech", s.page(techPageTemplate, "Tech")).Methods("GET")
	router.HandleFunc("/futuretech", s.page(futuretechPageTemplate, "FutureTech Store")).Methods("GET")
	router.HandleFunc("/about", s.page(aboutPageTemplate, "About")).Methods("GET")

	router.HandleFunc("/submit-form", s.submitContactForm()).Methods("POST")

	return nil
}

//go:embed templates
var templateFolder embed.FS
var (
	indexPageTemplate      *template.Template
	marketingPageTemplate  *template.Template
	techPageTemplate       *template.Template
	futuretechPageTemplate *template.Template
	aboutPageTemplate      *template.Template
)

func init() {
	indexPageTemplate = parsePage("index.html")
	marketingPageTemplate = parsePage("marketing.html")
	techPageTemplate = parsePage("tech.html")
	futuretechPageTemplate = parsePage("futuretech.html")
	aboutPageTemplate = parsePage("about.html")
}

func parsePage(filename string) *template.Template {
	return template.Must(template.ParseFS(templateFolder, "templates/layout.html", "templates/"+filename))
}

func (s *webService) page(tmpl *template.Template, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := tmpl.ExecuteTemplate(w, "layout", pageData{
			Title:    title,
			Products: catalogue,
		})
		if err != nil {
			responseWriter.WriteError(c, w, myerrors.NewInternalErrorf("error rendering page %s: %s", title, err))
			return
		}
	}
}

// submitContactForm only logs the message; nothing is stored or sent
func (s *webService) submitContactForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		msg, err := parseContactMessage(r)
		if err != nil {
			responseWriter.WriteError(c, w, myerrors.NewInvalidInputError(err))
			return
		}
		msg.UID = s.uuider.Create()

		s.logger.Log(c, msg.UID, mylog.SeverityInfo, "New message from %s (%s): %s", msg.Name, msg.Email, msg.Message)

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func parseContactMessage(r *http.Request) (ContactMessage, error) {
	msg := ContactMessage{}

	err := r.ParseForm()
	if err != nil {
		return msg, fmt.Errorf("error parsing form: %s", err)
	}

	err = formcodec.NewDecoder().Decode(&msg, r.Form)
	if err != nil {
		return msg, fmt.Errorf("error decoding form: %s", err)
	}

	return msg, nil
}
