package domain

import "time"

type Review struct {
	ReviewID  int64     `json:"reviewId"`
	UserID    int64     `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
