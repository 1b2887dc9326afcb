package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"messager/errors"
	pb "messager/infrastructure/grpc/messagerpb"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/grpc/metadata"
)

var errUsage = stderrors.New("usage")

const usage = `usage: client <command> [arguments]

  register <handle> <password>          create an identity, prints a token
  login <handle> <password>             prints a token for MESSAGER_TOKEN
  create-account <name> <username>      create the messaging account of the token owner
  invite <address> [message...]         send a friend invite
  invites [address]                     list pending invites
  accept <address>                      accept the invites sent by address
  friends [address]                     list friends
  room-of <friend>                      print the room shared with a friend
  send <room> <message> [for-sender]    post a message to a room
  room <room>                           print the room history
  user <address|@username>              print a user
`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usage)
}

type cli struct {
	out      io.Writer
	messager pb.MessagerServiceClient
	auth     pb.AuthServiceClient
	token    string
}

func newCLI(out io.Writer, messager pb.MessagerServiceClient, auth pb.AuthServiceClient, token string) *cli {
	return &cli{out: out, messager: messager, auth: auth, token: token}
}

func (c *cli) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	command, args := args[0], args[1:]
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)

	var err error
	switch command {
	case "register":
		err = c.register(ctx, args)
	case "login":
		err = c.login(ctx, args)
	case "create-account":
		err = c.createAccount(ctx, args)
	case "invite":
		err = c.invite(ctx, args)
	case "invites":
		err = c.invites(ctx, args)
	case "accept":
		err = c.accept(ctx, args)
	case "friends":
		err = c.friends(ctx, args)
	case "room-of":
		err = c.roomOf(ctx, args)
	case "send":
		err = c.send(ctx, args)
	case "room":
		err = c.room(ctx, args)
	case "user":
		err = c.user(ctx, args)
	default:
		return errUsage
	}
	if err != nil && err != errUsage {
		return fmt.Errorf("%s: %w", command, errors.FromGRPCError(err))
	}
	return err
}

func (c *cli) register(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	resp, err := c.auth.Register(ctx, &pb.RegisterRequest{Handle: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	c.success("registered %s", resp.UserID)
	fmt.Fprintf(c.out, "MESSAGER_TOKEN=%s\n", resp.Token)
	return nil
}

func (c *cli) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	resp, err := c.auth.Login(ctx, &pb.LoginRequest{Handle: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "MESSAGER_TOKEN=%s\n", resp.Token)
	return nil
}

func (c *cli) createAccount(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	user, err := c.messager.CreateAccount(ctx, &pb.CreateAccountRequest{Name: args[0], Username: args[1]})
	if err != nil {
		return err
	}
	c.success("account %s created for %s", user.Username, user.Owner)
	return nil
}

func (c *cli) invite(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errUsage
	}
	_, err := c.messager.SendInvite(ctx, &pb.SendInviteRequest{To: args[0], Message: strings.Join(args[1:], " ")})
	if err != nil {
		return err
	}
	c.success("invite sent to %s", args[0])
	return nil
}

func (c *cli) invites(ctx context.Context, args []string) error {
	resp, err := c.messager.GetInvites(ctx, &pb.AddressRequest{Address: optional(args)})
	if err != nil {
		return err
	}
	table := c.table("From", "Message", "Sent at")
	for _, invite := range resp.Invites {
		table.Append([]string{invite.Sender, invite.Message, invite.SentAt.Format(time.DateTime)})
	}
	table.Render()
	return nil
}

func (c *cli) accept(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	resp, err := c.messager.AcceptInvite(ctx, &pb.AcceptInviteRequest{From: args[0]})
	if err != nil {
		return err
	}
	c.success("now friends with %s", args[0])
	fmt.Fprintf(c.out, "room %s\n", resp.RoomID)
	return nil
}

func (c *cli) friends(ctx context.Context, args []string) error {
	resp, err := c.messager.GetFriends(ctx, &pb.AddressRequest{Address: optional(args)})
	if err != nil {
		return err
	}
	table := c.table("Friend")
	for _, friend := range resp.Friends {
		table.Append([]string{friend})
	}
	table.Render()
	return nil
}

func (c *cli) roomOf(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	resp, err := c.messager.GetFriendRoom(ctx, &pb.FriendRoomRequest{Friend: args[0]})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, resp.RoomID)
	return nil
}

func (c *cli) send(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errUsage
	}
	forSender := args[1]
	if len(args) == 3 {
		forSender = args[2]
	}
	_, err := c.messager.SendMessage(ctx, &pb.SendMessageRequest{
		Room:           args[0],
		MsgForReceiver: args[1],
		MsgForSender:   forSender,
	})
	if err != nil {
		return err
	}
	c.success("message sent")
	return nil
}

func (c *cli) room(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	resp, err := c.messager.GetRoom(ctx, &pb.GetRoomRequest{RoomID: args[0]})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "room %s between %s\n", resp.RoomID, strings.Join(resp.Participants, " and "))
	table := c.table("At", "Sender", "For receiver", "For sender")
	for _, message := range resp.Messages {
		table.Append([]string{message.At.Format(time.TimeOnly), message.Sender, message.MsgForReceiver, message.MsgForSender})
	}
	table.Render()
	return nil
}

func (c *cli) user(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	var (
		user *pb.UserResponse
		err  error
	)
	if username, ok := strings.CutPrefix(args[0], "@"); ok {
		user, err = c.messager.GetUserByUsername(ctx, &pb.UsernameRequest{Username: username})
	} else {
		user, err = c.messager.GetUser(ctx, &pb.AddressRequest{Address: args[0]})
	}
	if err != nil {
		return err
	}
	table := c.table("Address", "Name", "Username", "Friends")
	table.Append([]string{user.Owner, user.Name, user.Username, strings.Join(user.Friends, ", ")})
	table.Render()
	return nil
}

func (c *cli) table(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

func (c *cli) success(format string, args ...any) {
	fmt.Fprintln(c.out, color.New(color.FgGreen).Render(fmt.Sprintf(format, args...)))
}

func optional(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
