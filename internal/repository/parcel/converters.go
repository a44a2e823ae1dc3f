package parcel

import (
	"marketplace/internal/entities"
)

func ToDomain(p *PackageDB, history []StatusHistoryDB) *entities.Package {
	if p == nil {
		return nil
	}

	pkg := &entities.Package{
		ID:                    p.ID,
		TrackingNumber:        p.TrackingNumber,
		SenderID:              p.SenderID,
		CourierID:             p.CourierID,
		SenderName:            p.SenderName,
		SenderPhone:           p.SenderPhone,
		RecipientName:         p.RecipientName,
		RecipientPhone:        p.RecipientPhone,
		Description:           p.Description,
		PackageType:           entities.PackageType(p.PackageType),
		PackageCount:          p.PackageCount,
		WeightKg:              p.WeightKg,
		PackageValue:          p.PackageValue,
		HighValue:             p.HighValue,
		OriginCity:            p.OriginCity,
		DestinationCity:       p.DestinationCity,
		OriginCommune:         p.OriginCommune,
		DestinationCommune:    p.DestinationCommune,
		OriginAddress:         p.OriginAddress,
		DestinationAddress:    p.DestinationAddress,
		ServiceLevel:          entities.ServiceLevel(p.ServiceLevel),
		DistanceKm:            p.DistanceKm,
		Price:                 p.Price,
		PaymentMethod:         entities.PaymentMethod(p.PaymentMethod),
		EstimatedDeliveryTime: p.EstimatedDeliveryTime,
		Status:                entities.PackageStatus(p.Status),
		StatusHistory:         ToDomainHistory(history),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}

	// dimensions are stored as three nullable columns, all or nothing
	if p.LengthCm != nil && p.WidthCm != nil && p.HeightCm != nil {
		pkg.Dimensions = &entities.Dimensions{
			LengthCm: *p.LengthCm,
			WidthCm:  *p.WidthCm,
			HeightCm: *p.HeightCm,
		}
	}
	if p.SignerName != nil && p.SignedAt != nil {
		pkg.DeliverySignature = &entities.DeliverySignature{
			SignerName: *p.SignerName,
			SignedAt:   *p.SignedAt,
		}
	}

	return pkg
}

func FromDomain(pkg *entities.Package) *PackageDB {
	if pkg == nil {
		return nil
	}

	model := &PackageDB{
		ID:                    pkg.ID,
		TrackingNumber:        pkg.TrackingNumber,
		SenderID:              pkg.SenderID,
		CourierID:             pkg.CourierID,
		SenderName:            pkg.SenderName,
		SenderPhone:           pkg.SenderPhone,
		RecipientName:         pkg.RecipientName,
		RecipientPhone:        pkg.RecipientPhone,
		Description:           pkg.Description,
		PackageType:           pkg.PackageType.String(),
		PackageCount:          pkg.PackageCount,
		WeightKg:              pkg.WeightKg,
		PackageValue:          pkg.PackageValue,
		HighValue:             pkg.HighValue,
		OriginCity:            pkg.OriginCity,
		DestinationCity:       pkg.DestinationCity,
		OriginCommune:         pkg.OriginCommune,
		DestinationCommune:    pkg.DestinationCommune,
		OriginAddress:         pkg.OriginAddress,
		DestinationAddress:    pkg.DestinationAddress,
		ServiceLevel:          pkg.ServiceLevel.String(),
		DistanceKm:            pkg.DistanceKm,
		Price:                 pkg.Price,
		PaymentMethod:         pkg.PaymentMethod.String(),
		EstimatedDeliveryTime: pkg.EstimatedDeliveryTime,
		Status:                pkg.Status.String(),
		CreatedAt:             pkg.CreatedAt,
		UpdatedAt:             pkg.UpdatedAt,
	}

	if pkg.Dimensions != nil {
		model.LengthCm = &pkg.Dimensions.LengthCm
		model.WidthCm = &pkg.Dimensions.WidthCm
		model.HeightCm = &pkg.Dimensions.HeightCm
	}
	if pkg.DeliverySignature != nil {
		model.SignerName = &pkg.DeliverySignature.SignerName
		model.SignedAt = &pkg.DeliverySignature.SignedAt
	}

	return model
}

func ToDomainHistory(history []StatusHistoryDB) []entities.StatusEntry {
	result := make([]entities.StatusEntry, len(history))
	for i, h := range history {
		result[i] = entities.StatusEntry{
			Status:    entities.PackageStatus(h.Status),
			Timestamp: h.CreatedAt,
			Notes:     h.Note,
		}
	}
	return result
}
