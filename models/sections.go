package models

import (
	"context"
	"net/url"

	"github.com/VoyageGenie/voyage-backend/errors"
	"github.com/VoyageGenie/voyage-backend/types"
	"github.com/google/uuid"
)

// MapURL derives the map search link for a free-text location. No
// geocoding; the query is URL-escaped verbatim.
func MapURL(location string) string {
	if location == "" {
		return ""
	}
	return types.MapSearchURL + url.QueryEscape(location)
}

// edit loads the document, applies fn to it, and funnels the result
// through Replace. Every section operation goes through here.
func (im *ItineraryModel) edit(ctx context.Context, userID, itineraryID string, fn func(*types.Itinerary) error) (*types.Itinerary, error) {
	it, err := im.Get(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}
	if err := fn(it); err != nil {
		return nil, err
	}
	if err := im.Replace(ctx, userID, it); err != nil {
		return nil, err
	}
	return it, nil
}

func findDay(it *types.Itinerary, dayID string) (*types.DailyPlan, error) {
	for i := range it.DailyItinerary {
		if it.DailyItinerary[i].ID == dayID {
			return &it.DailyItinerary[i], nil
		}
	}
	return nil, errors.NotFound("Daily plan", dayID)
}

// AddActivity appends an activity to the named day.
func (im *ItineraryModel) AddActivity(ctx context.Context, userID, itineraryID, dayID string, req *types.ActivityCreate) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		plan, err := findDay(it, dayID)
		if err != nil {
			return err
		}
		plan.Activities = append(plan.Activities, types.Activity{
			ID:       uuid.New().String(),
			TimeSlot: req.TimeSlot,
			Location: req.Location,
			Notes:    req.Notes,
			MapURL:   MapURL(req.Location),
		})
		return nil
	})
}

// UpdateActivity edits an activity in place, re-deriving its map link.
func (im *ItineraryModel) UpdateActivity(ctx context.Context, userID, itineraryID, dayID, activityID string, req *types.ActivityCreate) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		plan, err := findDay(it, dayID)
		if err != nil {
			return err
		}
		for i := range plan.Activities {
			if plan.Activities[i].ID == activityID {
				plan.Activities[i].TimeSlot = req.TimeSlot
				plan.Activities[i].Location = req.Location
				plan.Activities[i].Notes = req.Notes
				plan.Activities[i].MapURL = MapURL(req.Location)
				return nil
			}
		}
		return errors.NotFound("Activity", activityID)
	})
}

// DeleteActivity removes an activity from its day.
func (im *ItineraryModel) DeleteActivity(ctx context.Context, userID, itineraryID, dayID, activityID string) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		plan, err := findDay(it, dayID)
		if err != nil {
			return err
		}
		for i := range plan.Activities {
			if plan.Activities[i].ID == activityID {
				plan.Activities = append(plan.Activities[:i], plan.Activities[i+1:]...)
				return nil
			}
		}
		return errors.NotFound("Activity", activityID)
	})
}

// CopyActivity duplicates an activity within its day under a new id.
func (im *ItineraryModel) CopyActivity(ctx context.Context, userID, itineraryID, dayID, activityID string) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		plan, err := findDay(it, dayID)
		if err != nil {
			return err
		}
		for i := range plan.Activities {
			if plan.Activities[i].ID == activityID {
				dup := plan.Activities[i]
				dup.ID = uuid.New().String()
				plan.Activities = append(plan.Activities, dup)
				return nil
			}
		}
		return errors.NotFound("Activity", activityID)
	})
}

// MoveActivity removes an activity from its day and appends it to the day
// with the given number.
func (im *ItineraryModel) MoveActivity(ctx context.Context, userID, itineraryID, dayID, activityID string, targetDay int) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		source, err := findDay(it, dayID)
		if err != nil {
			return err
		}

		var target *types.DailyPlan
		for i := range it.DailyItinerary {
			if it.DailyItinerary[i].Day == targetDay {
				target = &it.DailyItinerary[i]
				break
			}
		}
		if target == nil {
			return errors.ValidationFailed("invalid target day", "no daily plan with that day number")
		}
		if target.ID == source.ID {
			return nil
		}

		for i := range source.Activities {
			if source.Activities[i].ID == activityID {
				moved := source.Activities[i]
				source.Activities = append(source.Activities[:i], source.Activities[i+1:]...)
				target.Activities = append(target.Activities, moved)
				return nil
			}
		}
		return errors.NotFound("Activity", activityID)
	})
}

// AddPackingItem appends a packing-list entry. Duplicate names are allowed.
func (im *ItineraryModel) AddPackingItem(ctx context.Context, userID, itineraryID string, req *types.PackingItemCreate) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		it.PackingList = append(it.PackingList, types.PackingItem{
			ID:       uuid.New().String(),
			Name:     req.Name,
			Category: req.Category,
			Checked:  false,
		})
		return nil
	})
}

// TogglePackingItem flips the packed flag of one entry.
func (im *ItineraryModel) TogglePackingItem(ctx context.Context, userID, itineraryID, itemID string) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		for i := range it.PackingList {
			if it.PackingList[i].ID == itemID {
				it.PackingList[i].Checked = !it.PackingList[i].Checked
				return nil
			}
		}
		return errors.NotFound("Packing item", itemID)
	})
}

// DeletePackingItem removes one packing-list entry.
func (im *ItineraryModel) DeletePackingItem(ctx context.Context, userID, itineraryID, itemID string) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		for i := range it.PackingList {
			if it.PackingList[i].ID == itemID {
				it.PackingList = append(it.PackingList[:i], it.PackingList[i+1:]...)
				return nil
			}
		}
		return errors.NotFound("Packing item", itemID)
	})
}

// normalizeTransport assigns missing ids and mirrors the rental pickup
// location into the return location when they are flagged as the same.
func normalizeTransport(tr *types.TransportInfo) {
	if tr.ID == "" {
		tr.ID = uuid.New().String()
	}
	if tr.Rental != nil && tr.Rental.SameLocation {
		tr.Rental.ReturnLocation = tr.Rental.PickupLocation
	}
}

// AddTransport appends a transport entry. Variant/mode consistency is
// checked by the document validation inside Replace.
func (im *ItineraryModel) AddTransport(ctx context.Context, userID, itineraryID string, tr *types.TransportInfo) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		tr.ID = ""
		normalizeTransport(tr)
		it.Transports = append(it.Transports, *tr)
		return nil
	})
}

// UpdateTransport replaces a transport entry by id.
func (im *ItineraryModel) UpdateTransport(ctx context.Context, userID, itineraryID, transportID string, tr *types.TransportInfo) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		for i := range it.Transports {
			if it.Transports[i].ID == transportID {
				tr.ID = transportID
				normalizeTransport(tr)
				it.Transports[i] = *tr
				return nil
			}
		}
		return errors.NotFound("Transport", transportID)
	})
}

// DeleteTransport removes a transport entry.
func (im *ItineraryModel) DeleteTransport(ctx context.Context, userID, itineraryID, transportID string) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		for i := range it.Transports {
			if it.Transports[i].ID == transportID {
				it.Transports = append(it.Transports[:i], it.Transports[i+1:]...)
				return nil
			}
		}
		return errors.NotFound("Transport", transportID)
	})
}

func concertFromRequest(req *types.ConcertCreate) types.ConcertInfo {
	return types.ConcertInfo{
		Artist:      req.Artist,
		Venue:       req.Venue,
		Date:        req.Date,
		MerchTime:   req.MerchTime,
		EntryTime:   req.EntryTime,
		StartTime:   req.StartTime,
		VenueMapURL: MapURL(req.Venue),
		Seat:        req.Seat,
		TicketCost:  req.TicketCost,
		MerchCost:   req.MerchCost,
		Currency:    req.Currency,
		Notes:       req.Notes,
		ImageURL:    req.ImageURL,
	}
}

// AddConcert appends a concert entry with the default checklist.
func (im *ItineraryModel) AddConcert(ctx context.Context, userID, itineraryID string, req *types.ConcertCreate) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		concert := concertFromRequest(req)
		concert.ID = uuid.New().String()
		concert.Checklist = types.DefaultConcertChecklist()
		it.Concerts = append(it.Concerts, concert)
		return nil
	})
}

// UpdateConcert edits a concert entry, keeping its checklist state.
func (im *ItineraryModel) UpdateConcert(ctx context.Context, userID, itineraryID, concertID string, req *types.ConcertCreate) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		for i := range it.Concerts {
			if it.Concerts[i].ID == concertID {
				concert := concertFromRequest(req)
				concert.ID = concertID
				concert.Checklist = it.Concerts[i].Checklist
				it.Concerts[i] = concert
				return nil
			}
		}
		return errors.NotFound("Concert", concertID)
	})
}

// ToggleConcertChecklistItem flips one checklist entry of a concert.
func (im *ItineraryModel) ToggleConcertChecklistItem(ctx context.Context, userID, itineraryID, concertID, itemID string) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		for i := range it.Concerts {
			if it.Concerts[i].ID != concertID {
				continue
			}
			for j := range it.Concerts[i].Checklist {
				if it.Concerts[i].Checklist[j].ID == itemID {
					it.Concerts[i].Checklist[j].Checked = !it.Concerts[i].Checklist[j].Checked
					return nil
				}
			}
			return errors.NotFound("Checklist item", itemID)
		}
		return errors.NotFound("Concert", concertID)
	})
}

// DeleteConcert removes a concert entry.
func (im *ItineraryModel) DeleteConcert(ctx context.Context, userID, itineraryID, concertID string) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		for i := range it.Concerts {
			if it.Concerts[i].ID == concertID {
				it.Concerts = append(it.Concerts[:i], it.Concerts[i+1:]...)
				return nil
			}
		}
		return errors.NotFound("Concert", concertID)
	})
}

func shoppingFromRequest(req *types.ShoppingItemCreate) types.ShoppingItem {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return types.ShoppingItem{
		Name:        req.Name,
		Price:       req.Price,
		Currency:    req.Currency,
		Quantity:    quantity,
		Priority:    req.Priority,
		Date:        req.Date,
		ImageURL:    req.ImageURL,
		LocationURL: req.LocationURL,
		Link:        req.Link,
	}
}

// AddShoppingItem appends a shopping-list entry. New entries start
// unchecked and contribute nothing to the expense summary.
func (im *ItineraryModel) AddShoppingItem(ctx context.Context, userID, itineraryID string, req *types.ShoppingItemCreate) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		item := shoppingFromRequest(req)
		item.ID = uuid.New().String()
		it.ShoppingList = append(it.ShoppingList, item)
		return nil
	})
}

// UpdateShoppingItem edits a shopping-list entry, keeping its checked flag.
func (im *ItineraryModel) UpdateShoppingItem(ctx context.Context, userID, itineraryID, itemID string, req *types.ShoppingItemCreate) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		for i := range it.ShoppingList {
			if it.ShoppingList[i].ID == itemID {
				item := shoppingFromRequest(req)
				item.ID = itemID
				item.Checked = it.ShoppingList[i].Checked
				it.ShoppingList[i] = item
				return nil
			}
		}
		return errors.NotFound("Shopping item", itemID)
	})
}

// ToggleShoppingItem flips the purchased flag of one entry, which gates its
// inclusion in the expense summary.
func (im *ItineraryModel) ToggleShoppingItem(ctx context.Context, userID, itineraryID, itemID string) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		for i := range it.ShoppingList {
			if it.ShoppingList[i].ID == itemID {
				it.ShoppingList[i].Checked = !it.ShoppingList[i].Checked
				return nil
			}
		}
		return errors.NotFound("Shopping item", itemID)
	})
}

// DeleteShoppingItem removes one shopping-list entry.
func (im *ItineraryModel) DeleteShoppingItem(ctx context.Context, userID, itineraryID, itemID string) (*types.Itinerary, error) {
	return im.edit(ctx, userID, itineraryID, func(it *types.Itinerary) error {
		for i := range it.ShoppingList {
			if it.ShoppingList[i].ID == itemID {
				it.ShoppingList = append(it.ShoppingList[:i], it.ShoppingList[i+1:]...)
				return nil
			}
		}
		return errors.NotFound("Shopping item", itemID)
	})
}
