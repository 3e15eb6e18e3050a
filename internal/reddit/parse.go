package reddit

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

func parseListing(thing *Thing) (*listingData, error) {
	if thing == nil {
		return nil, fmt.Errorf("thing is nil")
	}
	if thing.Kind != KindListing {
		return nil, fmt.Errorf("expected Listing, got %s", thing.Kind)
	}

	var listing listingData
	if err := json.Unmarshal(thing.Data, &listing); err != nil {
		return nil, fmt.Errorf("failed to parse Listing data: %w", err)
	}
	return &listing, nil
}

// decodeThing unmarshals the data of a thing after checking its kind.
func decodeThing(thing *Thing, kind string, out any) error {
	if thing == nil {
		return fmt.Errorf("thing is nil")
	}
	if thing.Kind != kind {
		return fmt.Errorf("expected %s, got %s", kind, thing.Kind)
	}
	if err := json.Unmarshal(thing.Data, out); err != nil {
		return fmt.Errorf("failed to parse %s data: %w", kind, err)
	}
	return nil
}

func parsePost(thing *Thing) (*Post, error) {
	var post Post
	if err := decodeThing(thing, KindLink, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func parseSubreddit(thing *Thing) (*Subreddit, error) {
	var sub Subreddit
	if err := decodeThing(thing, KindSubreddit, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func parseAccount(thing *Thing) (*Account, error) {
	var account Account
	if err := decodeThing(thing, KindAccount, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// parseComment decodes a t1 thing together with its nested replies listing.
// Reddit sends "" instead of a listing when there are no replies.
func parseComment(thing *Thing) (*Comment, error) {
	var comment Comment
	if err := decodeThing(thing, KindComment, &comment); err != nil {
		return nil, err
	}

	var raw struct {
		Replies json.RawMessage `json:"replies"`
	}
	if err := json.Unmarshal(thing.Data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse comment replies: %w", err)
	}

	comment.Replies = []*CommentNode{}
	if trimmed := bytes.TrimSpace(raw.Replies); len(trimmed) > 0 && trimmed[0] == '{' {
		var replies Thing
		if err := json.Unmarshal(trimmed, &replies); err != nil {
			return nil, fmt.Errorf("failed to parse comment replies: %w", err)
		}
		forest, err := parseForest(&replies)
		if err != nil {
			return nil, err
		}
		comment.Replies = forest
	}

	return &comment, nil
}

func parseMore(thing *Thing) (*MoreComments, error) {
	var more MoreComments
	if err := decodeThing(thing, KindMore, &more); err != nil {
		return nil, err
	}
	return &more, nil
}

// parseNode decodes a t1 or more thing into a forest node.
func parseNode(thing *Thing) (*CommentNode, error) {
	switch thing.Kind {
	case KindComment:
		comment, err := parseComment(thing)
		if err != nil {
			return nil, err
		}
		return &CommentNode{Comment: comment}, nil
	case KindMore:
		more, err := parseMore(thing)
		if err != nil {
			return nil, err
		}
		return &CommentNode{More: more}, nil
	default:
		return nil, fmt.Errorf("unexpected kind in comment tree: %s", thing.Kind)
	}
}

// parseForest decodes a comment listing, keeping the remote order.
func parseForest(thing *Thing) ([]*CommentNode, error) {
	listing, err := parseListing(thing)
	if err != nil {
		return nil, err
	}

	forest := make([]*CommentNode, 0, len(listing.Children))
	for _, child := range listing.Children {
		node, err := parseNode(child)
		if err != nil {
			return nil, err
		}
		forest = append(forest, node)
	}
	return forest, nil
}

func parsePosts(things []*Thing) []*Post {
	posts := make([]*Post, 0, len(things))
	for _, thing := range things {
		post, err := parsePost(thing)
		if err != nil {
			logrus.Debugf("Skipping listing child: %v", err)
			continue
		}
		posts = append(posts, post)
	}
	return posts
}

func parseSubreddits(things []*Thing) []*Subreddit {
	subs := make([]*Subreddit, 0, len(things))
	for _, thing := range things {
		sub, err := parseSubreddit(thing)
		if err != nil {
			logrus.Debugf("Skipping listing child: %v", err)
			continue
		}
		subs = append(subs, sub)
	}
	return subs
}

func parseComments(things []*Thing) []*Comment {
	comments := make([]*Comment, 0, len(things))
	for _, thing := range things {
		comment, err := parseComment(thing)
		if err != nil {
			logrus.Debugf("Skipping listing child: %v", err)
			continue
		}
		comments = append(comments, comment)
	}
	return comments
}

func parseAccounts(things []*Thing) []*Account {
	accounts := make([]*Account, 0, len(things))
	for _, thing := range things {
		account, err := parseAccount(thing)
		if err != nil {
			logrus.Debugf("Skipping listing child: %v", err)
			continue
		}
		accounts = append(accounts, account)
	}
	return accounts
}

// parseItems keeps posts and comments of a mixed listing in order.
func parseItems(things []*Thing) []*Item {
	items := make([]*Item, 0, len(things))
	for _, thing := range things {
		switch thing.Kind {
		case KindLink:
			post, err := parsePost(thing)
			if err != nil {
				logrus.Debugf("Skipping listing child: %v", err)
				continue
			}
			items = append(items, &Item{Post: post})
		case KindComment:
			comment, err := parseComment(thing)
			if err != nil {
				logrus.Debugf("Skipping listing child: %v", err)
				continue
			}
			items = append(items, &Item{Comment: comment})
		}
	}
	return items
}

// parseMessages decodes inbox children; t1 replies and t4 messages share a shape.
func parseMessages(things []*Thing) []*Message {
	messages := make([]*Message, 0, len(things))
	for _, thing := range things {
		if thing.Kind != KindMessage && thing.Kind != KindComment {
			continue
		}
		var message Message
		if err := json.Unmarshal(thing.Data, &message); err != nil {
			logrus.Debugf("Skipping inbox child: %v", err)
			continue
		}
		messages = append(messages, &message)
	}
	return messages
}
