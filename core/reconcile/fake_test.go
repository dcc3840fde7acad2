package reconcile_test

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"creative-sync/core/dv360"

	"go.uber.org/zap"
)

// fakeAPI is an in-memory DV360 advertiser that records every call by name.
type fakeAPI struct {
	mu        sync.Mutex
	nextID    int
	creatives map[string]*dv360.Creative
	lineItems map[string][]string
	calls     []string
	fail      map[string]error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		nextID:    100,
		creatives: map[string]*dv360.Creative{},
		lineItems: map[string][]string{},
		fail:      map[string]error{},
	}
}

// failOn makes the named call fail; key is "op" or "op:id".
func (f *fakeAPI) failOn(key string) {
	f.fail[key] = fmt.Errorf("%s: injected failure", key)
}

func (f *fakeAPI) record(op, id string) error {
	f.calls = append(f.calls, op)
	if err, ok := f.fail[op+":"+id]; ok {
		return err
	}
	return f.fail[op]
}

func (f *fakeAPI) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (f *fakeAPI) writes() int {
	n := 0
	for _, op := range []string{"CreateCreative", "UpdateCreative", "PauseCreative", "ArchiveCreative", "DeleteCreative", "UpdateLineItem", "Resolve"} {
		n += f.count(op)
	}
	return n
}

func (f *fakeAPI) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *fakeAPI) GetCreative(_ context.Context, advertiserID, creativeID string) (*dv360.Creative, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetCreative", creativeID); err != nil {
		return nil, err
	}
	c, ok := f.creatives[creativeID]
	if !ok {
		return nil, &dv360.UpstreamError{Op: "get_creative", Status: 404, Message: "not found"}
	}
	return c.Clone(), nil
}

func (f *fakeAPI) CreateCreative(_ context.Context, advertiserID string, creative *dv360.Creative) (*dv360.Creative, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateCreative", creative.DisplayName); err != nil {
		return nil, err
	}
	f.nextID++
	c := creative.Clone()
	c.AdvertiserID = advertiserID
	c.CreativeID = strconv.Itoa(f.nextID)
	f.creatives[c.CreativeID] = c
	return c.Clone(), nil
}

func (f *fakeAPI) UpdateCreative(_ context.Context, creative *dv360.Creative, mask []string) (*dv360.Creative, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateCreative", creative.CreativeID); err != nil {
		return nil, err
	}
	f.creatives[creative.CreativeID] = creative.Clone()
	return creative.Clone(), nil
}

func (f *fakeAPI) setStatus(op, creativeID string, status dv360.EntityStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(op, creativeID); err != nil {
		return err
	}
	if c, ok := f.creatives[creativeID]; ok {
		c.EntityStatus = status
	}
	return nil
}

func (f *fakeAPI) PauseCreative(_ context.Context, _, creativeID string) error {
	return f.setStatus("PauseCreative", creativeID, dv360.StatusPaused)
}

func (f *fakeAPI) ArchiveCreative(_ context.Context, _, creativeID string) error {
	return f.setStatus("ArchiveCreative", creativeID, dv360.StatusArchived)
}

func (f *fakeAPI) DeleteCreative(_ context.Context, _, creativeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteCreative", creativeID); err != nil {
		return err
	}
	if c, ok := f.creatives[creativeID]; ok && c.EntityStatus != dv360.StatusArchived {
		return &dv360.UpstreamError{Op: "delete_creative", Status: 400, Message: "creative must be archived"}
	}
	delete(f.creatives, creativeID)
	return nil
}

func (f *fakeAPI) GetLineItem(_ context.Context, advertiserID, lineItemID string) (*dv360.LineItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetLineItem", lineItemID); err != nil {
		return nil, err
	}
	return &dv360.LineItem{
		AdvertiserID: advertiserID,
		LineItemID:   lineItemID,
		CreativeIDs:  append([]string(nil), f.lineItems[lineItemID]...),
	}, nil
}

func (f *fakeAPI) UpdateLineItem(_ context.Context, li *dv360.LineItem) (*dv360.LineItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateLineItem", li.LineItemID); err != nil {
		return nil, err
	}
	ids := make([]string, len(li.CreativeIDs))
	copy(ids, li.CreativeIDs)
	f.lineItems[li.LineItemID] = ids
	return li, nil
}

// Resolve stands in for the asset resolver and shares the call log.
func (f *fakeAPI) Resolve(_ context.Context, advertiserID, ref, filename string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Resolve", filename); err != nil {
		return "", err
	}
	return "media-" + filename, nil
}

type nopAudit struct{}

func (nopAudit) Log(context.Context, string, ...zap.Field) {}
