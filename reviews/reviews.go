package reviews

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"wayfarer/db"
	"wayfarer/models"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/reviews?location=&category=&skip=&limit=
func GetReviews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 20, 100)

	filter := bson.M{}
	if loc := r.URL.Query().Get("location"); loc != "" {
		filter["location"] = loc
	}
	if cat := r.URL.Query().Get("category"); cat != "" {
		filter["category"] = cat
	}

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := db.ReviewsCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}
	defer cursor.Close(ctx)

	var list []models.Review
	if err := cursor.All(ctx, &list); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode reviews")
		return
	}
	if list == nil {
		list = []models.Review{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"reviews": list})
}

// POST /api/reviews
func AddReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review.Author = utils.StripHTML(review.Author)
	review.Location = utils.StripHTML(review.Location)
	review.Text = utils.StripHTML(review.Text)
	review.Tags = utils.SplitTags(strings.Join(review.Tags, ","))

	switch {
	case review.Location == "":
		utils.RespondWithError(w, http.StatusBadRequest, "Location is required")
		return
	case review.Text == "":
		utils.RespondWithError(w, http.StatusBadRequest, "Review text is required")
		return
	case review.Rating < 1 || review.Rating > 5:
		utils.RespondWithError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	review.ReviewID = utils.GetUUID()
	review.Likes = 0
	review.Image = ""
	review.Thumb = ""
	review.CreatedAt = time.Now().UTC()
	if review.Author == "" {
		review.Author = "Anonymous"
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ReviewsCollection.InsertOne(ctx, review); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save review")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, review)
}

// POST /api/reviews/:reviewid/like
func LikeReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reviewID := ps.ByName("reviewid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result := db.ReviewsCollection.FindOneAndUpdate(ctx,
		bson.M{"reviewid": reviewID},
		bson.M{"$inc": bson.M{"likes": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var review models.Review
	if err := result.Decode(&review); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"reviewid": review.ReviewID, "likes": review.Likes})
}
