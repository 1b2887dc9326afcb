package repositories

import (
	"fmt"
	"messager/domain"
	"messager/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type IInviteRepository interface {
	AppendInvite(to domain.Address, invite domain.Invite) error
	ListInvites(to domain.Address) ([]domain.Invite, error)
	RemoveInvitesFrom(to, from domain.Address) (int, error)
}

// InviteRepository keeps the pending invites of a recipient as one ordered list
// under "invite:{recipient}". Duplicates are kept: the list is append-only until accepted.
type InviteRepository struct {
	txn *badger.Txn
}

type diskInvite struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
	SentAt  int64  `json:"sent_at"`
}

func inviteKey(to domain.Address) []byte {
	return []byte("invite:" + string(to))
}

func (i InviteRepository) AppendInvite(to domain.Address, invite domain.Invite) error {
	pending, err := i.load(to)
	if err != nil {
		return err
	}
	pending = append(pending, diskInvite{
		Sender:  string(invite.Sender),
		Message: invite.Message,
		SentAt:  invite.SentAt.UnixNano(),
	})
	return setJSON(i.txn, inviteKey(to), pending)
}

func (i InviteRepository) ListInvites(to domain.Address) ([]domain.Invite, error) {
	pending, err := i.load(to)
	if err != nil {
		return nil, err
	}
	return lo.Map(pending, func(item diskInvite, _ int) domain.Invite {
		return domain.Invite{
			Sender:  domain.Address(item.Sender),
			Message: item.Message,
			SentAt:  time.Unix(0, item.SentAt).UTC(),
		}
	}), nil
}

// RemoveInvitesFrom drops every pending invite sent by from to to.
// It returns ErrInviteNotFound when there was none.
func (i InviteRepository) RemoveInvitesFrom(to, from domain.Address) (int, error) {
	pending, err := i.load(to)
	if err != nil {
		return 0, err
	}
	kept := lo.Reject(pending, func(item diskInvite, _ int) bool {
		return item.Sender == string(from)
	})
	removed := len(pending) - len(kept)
	if removed == 0 {
		return 0, fmt.Errorf("%w: from %s to %s", errors.ErrInviteNotFound, from, to)
	}
	if len(kept) == 0 {
		return removed, i.txn.Delete(inviteKey(to))
	}
	return removed, setJSON(i.txn, inviteKey(to), kept)
}

func (i InviteRepository) load(to domain.Address) ([]diskInvite, error) {
	pending := []diskInvite{}
	err := getJSON(i.txn, inviteKey(to), &pending)
	if err == badger.ErrKeyNotFound {
		return []diskInvite{}, nil
	}
	return pending, err
}
