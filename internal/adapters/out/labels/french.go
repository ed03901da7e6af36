// Package labels holds the presentation metadata of order statuses: the French
// display labels stored in the status history and the badge styling used by clients.
package labels

import (
	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
)

var frenchPresentations = map[order.Status]ports.StatusPresentation{
	order.Pending:               {Label: "En attente", BadgeClass: "badge-warning", Icon: "hourglass"},
	order.Validated:             {Label: "Validée", BadgeClass: "badge-info", Icon: "check"},
	order.Preparing:             {Label: "En préparation", BadgeClass: "badge-primary", Icon: "chef-hat"},
	order.Ready:                 {Label: "Prête", BadgeClass: "badge-primary", Icon: "package"},
	order.Delivering:            {Label: "En livraison", BadgeClass: "badge-primary", Icon: "truck"},
	order.Delivered:             {Label: "Livrée", BadgeClass: "badge-success", Icon: "home"},
	order.WaitingMaterialReturn: {Label: "En attente de retour du matériel", BadgeClass: "badge-warning", Icon: "rotate"},
	order.Completed:             {Label: "Terminée", BadgeClass: "badge-success", Icon: "flag"},
	order.Cancelled:             {Label: "Annulée", BadgeClass: "badge-danger", Icon: "x"},
}

// unknownPresentation is returned for statuses outside the lifecycle.
var unknownPresentation = ports.StatusPresentation{Label: "Inconnu", BadgeClass: "badge-secondary", Icon: "help"}

// French implements ports.StatusLabeler with French wording.
type French struct{}

// NewFrench returns the French status labeler.
func NewFrench() French {
	return French{}
}

// Label returns the display label of s.
func (f French) Label(s order.Status) string {
	return f.Presentation(s).Label
}

// Presentation returns the label, badge class and icon of s.
func (French) Presentation(s order.Status) ports.StatusPresentation {
	if p, ok := frenchPresentations[s]; ok {
		return p
	}
	return unknownPresentation
}
